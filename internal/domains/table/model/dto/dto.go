package dto

import (
	"github.com/google/uuid"
	"tablebook/internal/domains/table/model"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"
)

type AddTableRequest struct {
	TableNumber int `json:"table_number" validate:"required,min=1"`
	Capacity    int `json:"capacity"     validate:"required,min=1"`
}

func (a *AddTableRequest) ToModel(restaurantID string) model.Table {
	return model.Table{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		TableNumber:  a.TableNumber,
		Capacity:     a.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateTableRequest struct {
	Capacity int `db:"capacity" json:"capacity" validate:"required,min=1"`
}

type TableResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	TableNumber  int    `json:"table_number"`
	Capacity     int    `json:"capacity"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(model model.Table) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.TableNumber = model.TableNumber
	r.Capacity = model.Capacity
	r.Metadata.FromModel(model.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table) {
	r.TotalData = len(models)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}
