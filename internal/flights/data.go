// Package flights serves the mock flight board. The data set is fixed; only
// the search over it is behavior.
package flights

import "flightcool/internal/model"

var mockFlights = []model.Flight{
	{
		ID:           "1",
		FlightNumber: "SQ321",
		Airline:      "Singapore Airlines",
		Status:       model.StatusOnTime,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "SIN", Name: "Changi Airport", City: "Singapore"},
			Terminal: "T3",
			Gate:     "B12",
			Time:     model.FlightTime{Scheduled: "2025-01-25T08:30:00", Estimated: "2025-01-25T08:30:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "LHR", Name: "Heathrow Airport", City: "London"},
			Terminal: "T2",
			Gate:     "A45",
			Time:     model.FlightTime{Scheduled: "2025-01-25T15:45:00", Estimated: "2025-01-25T15:45:00"},
		},
		Aircraft: "Airbus A380-800",
		Progress: 0,
		Duration: "13h 15m",
	},
	{
		ID:           "2",
		FlightNumber: "UA123",
		Airline:      "United Airlines",
		Status:       model.StatusDelayed,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "JFK", Name: "John F. Kennedy Intl", City: "New York"},
			Terminal: "T7",
			Gate:     "C22",
			Time:     model.FlightTime{Scheduled: "2025-01-25T10:00:00", Estimated: "2025-01-25T11:30:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "LAX", Name: "Los Angeles Intl", City: "Los Angeles"},
			Terminal: "T5",
			Gate:     "D18",
			Time:     model.FlightTime{Scheduled: "2025-01-25T13:30:00", Estimated: "2025-01-25T15:00:00"},
		},
		Aircraft: "Boeing 787-9",
		Progress: 0,
		Duration: "5h 30m",
	},
	{
		ID:           "3",
		FlightNumber: "BA456",
		Airline:      "British Airways",
		Status:       model.StatusBoarding,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "LHR", Name: "Heathrow Airport", City: "London"},
			Terminal: "T5",
			Gate:     "A10",
			Time:     model.FlightTime{Scheduled: "2025-01-25T09:15:00", Estimated: "2025-01-25T09:15:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "CDG", Name: "Charles de Gaulle", City: "Paris"},
			Terminal: "T2E",
			Gate:     "K55",
			Time:     model.FlightTime{Scheduled: "2025-01-25T11:30:00", Estimated: "2025-01-25T11:30:00"},
		},
		Aircraft: "Airbus A320neo",
		Progress: 0,
		Duration: "1h 15m",
	},
	{
		ID:           "4",
		FlightNumber: "EK888",
		Airline:      "Emirates",
		Status:       model.StatusDeparted,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "DXB", Name: "Dubai Intl", City: "Dubai"},
			Terminal: "T3",
			Gate:     "B38",
			Time:     model.FlightTime{Scheduled: "2025-01-25T02:00:00", Actual: "2025-01-25T02:05:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "SYD", Name: "Sydney Airport", City: "Sydney"},
			Terminal: "T1",
			Gate:     "A22",
			Time:     model.FlightTime{Scheduled: "2025-01-25T16:30:00", Estimated: "2025-01-25T16:25:00"},
		},
		Aircraft: "Airbus A380-800",
		Progress: 65,
		Duration: "14h 30m",
	},
	{
		ID:           "5",
		FlightNumber: "AA789",
		Airline:      "American Airlines",
		Status:       model.StatusCancelled,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "ORD", Name: "O'Hare Intl", City: "Chicago"},
			Terminal: "T3",
			Gate:     "H15",
			Time:     model.FlightTime{Scheduled: "2025-01-25T14:00:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "MIA", Name: "Miami Intl", City: "Miami"},
			Terminal: "N",
			Gate:     "D12",
			Time:     model.FlightTime{Scheduled: "2025-01-25T18:30:00"},
		},
		Aircraft: "Boeing 737 MAX 8",
		Progress: 0,
		Duration: "3h 30m",
	},
	{
		ID:           "6",
		FlightNumber: "QF12",
		Airline:      "Qantas",
		Status:       model.StatusArrived,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "SYD", Name: "Sydney Airport", City: "Sydney"},
			Terminal: "T1",
			Gate:     "B52",
			Time:     model.FlightTime{Scheduled: "2025-01-24T16:00:00", Actual: "2025-01-24T16:10:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "LAX", Name: "Los Angeles Intl", City: "Los Angeles"},
			Terminal: "TB",
			Gate:     "A9",
			Time:     model.FlightTime{Scheduled: "2025-01-24T13:30:00", Actual: "2025-01-24T13:25:00"},
		},
		Aircraft: "Airbus A380-800",
		Progress: 100,
		Duration: "13h 30m",
	},
	{
		ID:           "7",
		FlightNumber: "LH901",
		Airline:      "Lufthansa",
		Status:       model.StatusOnTime,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt"},
			Terminal: "T1",
			Gate:     "A26",
			Time:     model.FlightTime{Scheduled: "2025-01-25T18:45:00", Estimated: "2025-01-25T18:45:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "NRT", Name: "Narita Intl", City: "Tokyo"},
			Terminal: "T1",
			Gate:     "Gate 32",
			Time:     model.FlightTime{Scheduled: "2025-01-26T14:15:00", Estimated: "2025-01-26T14:15:00"},
		},
		Aircraft: "Boeing 747-8",
		Progress: 0,
		Duration: "11h 30m",
	},
	{
		ID:           "8",
		FlightNumber: "AF1234",
		Airline:      "Air France",
		Status:       model.StatusDeparted,
		Departure: model.FlightLeg{
			Airport:  model.Airport{Code: "CDG", Name: "Charles de Gaulle", City: "Paris"},
			Terminal: "T2E",
			Gate:     "L42",
			Time:     model.FlightTime{Scheduled: "2025-01-25T06:00:00", Actual: "2025-01-25T06:08:00"},
		},
		Arrival: model.FlightLeg{
			Airport:  model.Airport{Code: "JFK", Name: "John F. Kennedy Intl", City: "New York"},
			Terminal: "T1",
			Gate:     "B8",
			Time:     model.FlightTime{Scheduled: "2025-01-25T08:45:00", Estimated: "2025-01-25T08:40:00"},
		},
		Aircraft: "Airbus A350-900",
		Progress: 42,
		Duration: "8h 45m",
	},
}
