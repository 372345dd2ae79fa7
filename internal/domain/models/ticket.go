package models

import "time"

// Ticket is one passenger's confirmed seat on a run.
type Ticket struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ScheduleID     int64     `json:"schedule_id"`
	PassengerName  string    `json:"passenger_name"`
	PassengerPhone string    `json:"passenger_phone"`
	PassengerEmail string    `json:"passenger_email"`
	PurchaseTime   time.Time `json:"purchase_time"`
}

// TicketDetail is a ticket joined with its schedule, as returned by the
// ticket read endpoints.
type TicketDetail struct {
	ID             int64     `json:"id"`
	PassengerName  string    `json:"passenger_name"`
	PassengerPhone string    `json:"passenger_phone"`
	PassengerEmail string    `json:"passenger_email"`
	PurchaseTime   time.Time `json:"purchase_time"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	Operator       string    `json:"operator"`
	Price          float64   `json:"price"`
}
