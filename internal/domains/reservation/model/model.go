package model

import (
	"time"

	"tablebook/shared/constant"
	"tablebook/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldRestaurantID    = "restaurant_id"
	FieldTableID         = "table_id"
	FieldCustomerName    = "customer_name"
	FieldCustomerEmail   = "customer_email"
	FieldCustomerPhone   = "customer_phone"
	FieldPartySize       = "party_size"
	FieldDate            = "date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldDurationMinutes = "duration_minutes"
	FieldStatus          = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID              string    `db:"id"`
	RestaurantID    string    `db:"restaurant_id"`
	TableID         string    `db:"table_id"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	PartySize       int       `db:"party_size"`
	Date            time.Time `db:"date"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	DurationMinutes int       `db:"duration_minutes"`
	Status          string    `db:"status"`
	model.Metadata
}

// StartMinutes returns the start time as minutes since midnight.
func (r Reservation) StartMinutes() int {
	return r.StartTime.Hour()*constant.MinutesToHour + r.StartTime.Minute()
}

// EndMinutes returns the end time as minutes since midnight.
func (r Reservation) EndMinutes() int {
	return r.EndTime.Hour()*constant.MinutesToHour + r.EndTime.Minute()
}
