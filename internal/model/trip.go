package model

// DefaultTravelerAge is assigned to newly added travelers.
const DefaultTravelerAge = 30

type Traveler struct {
	TravelerID string `json:"traveler_id"`
	Age        int    `json:"age"`
}

// Trip is the quote input state. Dates use the "YYYY-MM-DD" format; an empty
// string means unset. Mutation handlers never modify a Trip in place: they
// clone it and return the new snapshot.
type Trip struct {
	DestinationCode string     `json:"destination_code"`
	DepartureDate   string     `json:"departure_date"`
	ReturnDate      string     `json:"return_date"`
	Travelers       []Traveler `json:"travelers"`
}

// Clone returns a deep copy so the previous snapshot stays observable.
func (t Trip) Clone() Trip {
	out := t
	out.Travelers = make([]Traveler, len(t.Travelers))
	copy(out.Travelers, t.Travelers)
	return out
}

// FindTraveler returns the index of the traveler with the given id, or -1.
func (t Trip) FindTraveler(id string) int {
	for i := range t.Travelers {
		if t.Travelers[i].TravelerID == id {
			return i
		}
	}
	return -1
}
