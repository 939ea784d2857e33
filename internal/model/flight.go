package model

type FlightStatus string

const (
	StatusOnTime    FlightStatus = "on-time"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"
	StatusBoarding  FlightStatus = "boarding"
	StatusDeparted  FlightStatus = "departed"
	StatusArrived   FlightStatus = "arrived"
)

type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type FlightTime struct {
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated,omitempty"`
	Actual    string `json:"actual,omitempty"`
}

type FlightLeg struct {
	Airport  Airport    `json:"airport"`
	Terminal string     `json:"terminal"`
	Gate     string     `json:"gate"`
	Time     FlightTime `json:"time"`
}

type Flight struct {
	ID           string       `json:"id"`
	FlightNumber string       `json:"flight_number"`
	Airline      string       `json:"airline"`
	Status       FlightStatus `json:"status"`
	Departure    FlightLeg    `json:"departure"`
	Arrival      FlightLeg    `json:"arrival"`
	Aircraft     string       `json:"aircraft"`
	Progress     int          `json:"progress"`
	Duration     string       `json:"duration"`
}
