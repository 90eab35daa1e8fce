package model

import (
	"database/sql"
	"time"

	"tablebook/shared/model"
)

const (
	TableName  = "waitlist_entries"
	EntityName = "waitlist"

	FieldID                 = "id"
	FieldRestaurantID       = "restaurant_id"
	FieldCustomerName       = "customer_name"
	FieldCustomerEmail      = "customer_email"
	FieldCustomerPhone      = "customer_phone"
	FieldPartySize          = "party_size"
	FieldRequestedDate      = "requested_date"
	FieldRequestedTime      = "requested_time"
	FieldPreferredTimeRange = "preferred_time_range"
	FieldStatus             = "status"
)

const (
	StatusWaiting  = "waiting"
	StatusNotified = "notified"
	StatusExpired  = "expired"
)

type WaitlistEntry struct {
	ID                 string         `db:"id"`
	RestaurantID       string         `db:"restaurant_id"`
	CustomerName       string         `db:"customer_name"`
	CustomerEmail      string         `db:"customer_email"`
	CustomerPhone      string         `db:"customer_phone"`
	PartySize          int            `db:"party_size"`
	RequestedDate      time.Time      `db:"requested_date"`
	RequestedTime      time.Time      `db:"requested_time"`
	PreferredTimeRange sql.NullString `db:"preferred_time_range"`
	Status             string         `db:"status"`
	model.Metadata
}
