package mutations

var registry = map[string]Handler{
	"set_destination":    &SetDestinationHandler{},
	"set_departure_date": &SetDepartureDateHandler{},
	"set_return_date":    &SetReturnDateHandler{},
	"add_traveler":       &AddTravelerHandler{},
	"remove_traveler":    &RemoveTravelerHandler{},
	"set_traveler_age":   &SetTravelerAgeHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
