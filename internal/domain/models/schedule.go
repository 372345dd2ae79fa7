package models

import "time"

// Schedule is one scheduled bus run with a fixed price and a mutable
// seat-availability counter. Rows are seeded via the admin endpoints;
// seats_available is mutated only by the booking service.
type Schedule struct {
	ID             int64     `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	Operator       string    `json:"operator"`
	Price          float64   `json:"price"`
	SeatsAvailable int       `json:"seats_available"`
}
