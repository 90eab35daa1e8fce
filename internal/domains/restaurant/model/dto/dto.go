package dto

import (
	"time"

	"github.com/google/uuid"
	"tablebook/internal/domains/restaurant/model"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	OpeningTime string `json:"opening_time" validate:"required,clocktime"`
	ClosingTime string `json:"closing_time" validate:"required,clocktime"`
}

func (c *CreateRestaurantRequest) ToModel() (model.Restaurant, error) {
	openingTime, err := time.Parse(constant.ClockFormat, c.OpeningTime)
	if err != nil {
		return model.Restaurant{}, err
	}

	closingTime, err := time.Parse(constant.ClockFormat, c.ClosingTime)
	if err != nil {
		return model.Restaurant{}, err
	}

	return model.Restaurant{
		ID:          uuid.NewString(),
		Name:        c.Name,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateRestaurantRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	OpeningTime string `json:"opening_time" validate:"omitempty,clocktime"`
	ClosingTime string `json:"closing_time" validate:"omitempty,clocktime"`
}

type RestaurantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(model model.Restaurant) {
	r.ID = model.ID
	r.Name = model.Name
	r.OpeningTime = model.OpeningTime.Format(constant.ClockFormat)
	r.ClosingTime = model.ClosingTime.Format(constant.ClockFormat)
	r.Metadata.FromModel(model.Metadata)
}

type RestaurantTableResponse struct {
	ID          string `json:"id"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
}

type RestaurantDetailsResponse struct {
	RestaurantResponse
	Tables            []RestaurantTableResponse `json:"tables"`
	ReservationCounts map[string]int            `json:"reservation_counts"`
}
