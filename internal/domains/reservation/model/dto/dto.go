package dto

import (
	"time"

	"github.com/google/uuid"
	"tablebook/internal/domains/reservation/model"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"
)

type CreateReservationRequest struct {
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerEmail   string `json:"customer_email"   validate:"required,email,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"omitempty,max=20"`
	PartySize       int    `json:"party_size"       validate:"required,min=1"`
	Date            string `json:"date"             validate:"required,dateonly"`
	StartTime       string `json:"start_time"       validate:"required,clocktime"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1"`
}

func (c *CreateReservationRequest) ToModel(restaurantID, tableID, endTime string, duration int) (model.Reservation, error) {
	date, err := time.Parse(constant.DateOnly, c.Date)
	if err != nil {
		return model.Reservation{}, err
	}

	start, err := time.Parse(constant.ClockFormat, c.StartTime)
	if err != nil {
		return model.Reservation{}, err
	}

	end, err := time.Parse(constant.ClockFormat, endTime)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:              uuid.NewString(),
		RestaurantID:    restaurantID,
		TableID:         tableID,
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		PartySize:       c.PartySize,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type ModifyReservationRequest struct {
	StartTime       string `json:"start_time"       validate:"omitempty,clocktime"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1"`
	PartySize       int    `json:"party_size"       validate:"omitempty,min=1"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	TableID         string `json:"table_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	PartySize       int    `json:"party_size"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.TableID = model.TableID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.PartySize = model.PartySize
	r.Date = model.Date.Format(constant.DateOnly)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.DurationMinutes = model.DurationMinutes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type AvailableSlot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
}

type AvailabilityResponse struct {
	RestaurantID    string          `json:"restaurant_id"`
	Date            string          `json:"date"`
	PartySize       int             `json:"party_size"`
	DurationMinutes int             `json:"duration_minutes"`
	Slots           []AvailableSlot `json:"slots"`
}
