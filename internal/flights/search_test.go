package flights

import "testing"

func TestSearchBlankReturnsAll(t *testing.T) {
	if got := Search(""); len(got) != 8 {
		t.Fatalf("expected 8 flights, got %d", len(got))
	}
	if got := Search("   "); len(got) != 8 {
		t.Fatalf("whitespace query: expected 8 flights, got %d", len(got))
	}
}

func TestSearchByFlightNumber(t *testing.T) {
	got := Search("sq321")
	if len(got) != 1 || got[0].FlightNumber != "SQ321" {
		t.Fatalf("expected exactly SQ321, got %v", got)
	}
}

func TestSearchByCity(t *testing.T) {
	// London appears as SQ321 arrival and BA456 departure.
	got := Search("London")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for London, got %d", len(got))
	}
}

func TestSearchByAirportCode(t *testing.T) {
	got := Search("jfk")
	if len(got) != 2 { // UA123 departs JFK, AF1234 arrives JFK
		t.Fatalf("expected 2 matches for jfk, got %d", len(got))
	}
}

func TestSearchByAirline(t *testing.T) {
	got := Search("emirates")
	if len(got) != 1 || got[0].FlightNumber != "EK888" {
		t.Fatalf("expected EK888, got %v", got)
	}
}

func TestSearchNoMatch(t *testing.T) {
	if got := Search("zeppelin"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
