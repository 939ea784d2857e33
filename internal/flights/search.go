package flights

import (
	"strings"

	"flightcool/internal/model"
)

// All returns the full board.
func All() []model.Flight {
	out := make([]model.Flight, len(mockFlights))
	copy(out, mockFlights)
	return out
}

// Search filters the board by case-insensitive substring match over flight
// number, airport codes, cities, and airline. A blank query returns all.
func Search(query string) []model.Flight {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}

	var out []model.Flight
	for _, f := range mockFlights {
		if matches(f, q) {
			out = append(out, f)
		}
	}
	return out
}

func matches(f model.Flight, q string) bool {
	fields := []string{
		f.FlightNumber,
		f.Departure.Airport.Code,
		f.Arrival.Airport.Code,
		f.Departure.Airport.City,
		f.Arrival.Airport.City,
		f.Airline,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
