package model

import (
	"time"

	"tablebook/shared/constant"
	"tablebook/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID          = "id"
	FieldName        = "name"
	FieldOpeningTime = "opening_time"
	FieldClosingTime = "closing_time"
)

type Restaurant struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	OpeningTime time.Time `db:"opening_time"`
	ClosingTime time.Time `db:"closing_time"`
	model.Metadata
}

// OpeningMinutes returns the opening time as minutes since midnight.
func (r Restaurant) OpeningMinutes() int {
	return r.OpeningTime.Hour()*constant.MinutesToHour + r.OpeningTime.Minute()
}

// ClosingMinutes returns the closing time as minutes since midnight.
func (r Restaurant) ClosingMinutes() int {
	return r.ClosingTime.Hour()*constant.MinutesToHour + r.ClosingTime.Minute()
}
