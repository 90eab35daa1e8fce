package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"tablebook/internal/domains/waitlist/model"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"
)

type AddWaitlistEntryRequest struct {
	CustomerName       string `json:"customer_name"        validate:"required,max=100"`
	CustomerEmail      string `json:"customer_email"       validate:"required,email,max=100"`
	CustomerPhone      string `json:"customer_phone"       validate:"omitempty,max=20"`
	PartySize          int    `json:"party_size"           validate:"required,min=1"`
	RequestedDate      string `json:"requested_date"       validate:"required,dateonly"`
	RequestedTime      string `json:"requested_time"       validate:"required,clocktime"`
	PreferredTimeRange string `json:"preferred_time_range" validate:"omitempty,max=50"`
}

func (a *AddWaitlistEntryRequest) ToModel(restaurantID string) (model.WaitlistEntry, error) {
	requestedDate, err := time.Parse(constant.DateOnly, a.RequestedDate)
	if err != nil {
		return model.WaitlistEntry{}, err
	}

	requestedTime, err := time.Parse(constant.ClockFormat, a.RequestedTime)
	if err != nil {
		return model.WaitlistEntry{}, err
	}

	return model.WaitlistEntry{
		ID:            uuid.NewString(),
		RestaurantID:  restaurantID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		PartySize:     a.PartySize,
		RequestedDate: requestedDate,
		RequestedTime: requestedTime,
		PreferredTimeRange: sql.NullString{
			String: a.PreferredTimeRange,
			Valid:  a.PreferredTimeRange != "",
		},
		Status: model.StatusWaiting,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateWaitlistStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=waiting notified expired"`
}

type WaitlistEntryResponse struct {
	ID                 string `json:"id"`
	RestaurantID       string `json:"restaurant_id"`
	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	CustomerPhone      string `json:"customer_phone"`
	PartySize          int    `json:"party_size"`
	RequestedDate      string `json:"requested_date"`
	RequestedTime      string `json:"requested_time"`
	PreferredTimeRange string `json:"preferred_time_range,omitempty"`
	Status             string `json:"status"`
	gDto.Metadata
}

func (r *WaitlistEntryResponse) FromModel(model model.WaitlistEntry) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.PartySize = model.PartySize
	r.RequestedDate = model.RequestedDate.Format(constant.DateOnly)
	r.RequestedTime = model.RequestedTime.Format(constant.ClockFormat)
	r.PreferredTimeRange = model.PreferredTimeRange.String
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetWaitlistResponse struct {
	Entries   []WaitlistEntryResponse `json:"entries"`
	TotalData int                     `json:"total_data"`
}

func (r *GetWaitlistResponse) FromModels(models []model.WaitlistEntry) {
	r.TotalData = len(models)

	r.Entries = make([]WaitlistEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
