package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tablebook/infras/otel"
	"tablebook/infras/postgres"
	"tablebook/internal/domains/waitlist/model"
	gDto "tablebook/shared/dto"
	gRepo "tablebook/shared/repository"
)

type Waitlist interface {
	Insert(ctx context.Context, model model.WaitlistEntry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WaitlistEntry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WaitlistEntry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WaitlistEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Waitlist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WaitlistEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
