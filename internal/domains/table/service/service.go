package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Table=MockTableService

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"tablebook/infras/otel"
	reservationModel "tablebook/internal/domains/reservation/model"
	reservationRepo "tablebook/internal/domains/reservation/repository"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	restaurantRepo "tablebook/internal/domains/restaurant/repository"
	"tablebook/internal/domains/table/model"
	"tablebook/internal/domains/table/model/dto"
	"tablebook/internal/domains/table/repository"
	"tablebook/shared"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
)

type Table interface {
	Add(ctx context.Context, restaurantID string, req dto.AddTableRequest) (dto.TableResponse, error)
	List(ctx context.Context, restaurantID string) (dto.GetTablesResponse, error)
	Update(ctx context.Context, restaurantID, tableID string, req dto.UpdateTableRequest) (dto.TableResponse, error)
	Delete(ctx context.Context, restaurantID, tableID string) error
}

type serviceImpl struct {
	repo            repository.Table
	restaurantRepo  restaurantRepo.Restaurant
	reservationRepo reservationRepo.Reservation
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Table, restaurantRepo restaurantRepo.Restaurant, reservationRepo reservationRepo.Reservation, cache cache.RedisCache, otel otel.Otel) Table {
	return &serviceImpl{
		repo:            repo,
		restaurantRepo:  restaurantRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, restaurantID string, req dto.AddTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.ensureRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	taken, err := s.repo.Exist(ctx, tableNumberFilter(restaurantID, req.TableNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check table number")

		return res, fmt.Errorf("failed to check table number: %w", err)
	}

	if taken {
		return res, failure.Conflict("table number already exists for this restaurant") // nolint:wrapcheck
	}

	table := req.ToModel(restaurantID)

	err = s.repo.Insert(ctx, table)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("table number already exists for this restaurant") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert table")

		return res, fmt.Errorf("failed to insert table: %w", err)
	}

	s.invalidateCaches(ctx, restaurantID)

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, restaurantID string) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.ensureRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	tables, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldTableNumber, SortDir: "ASC"},
		shared.FilterByID(restaurantID, model.FieldRestaurantID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(tables)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, restaurantID, tableID string, req dto.UpdateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.getTable(ctx, restaurantID, tableID)
	if err != nil {
		return res, err
	}

	err = s.repo.Update(ctx, shared.TransformFields(req), shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update table")

		return res, fmt.Errorf("failed to update table: %w", err)
	}

	s.invalidateCaches(ctx, restaurantID)

	table.Capacity = req.Capacity

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, restaurantID, tableID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.getTable(ctx, restaurantID, tableID)
	if err != nil {
		return err
	}

	booked, err := s.reservationRepo.Exist(ctx, confirmedOnTableFilter(tableID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservations for table")

		return fmt.Errorf("failed to check reservations for table: %w", err)
	}

	if booked {
		return failure.Conflict("table has confirmed reservations") // nolint:wrapcheck
	}

	err = s.repo.Delete(ctx, shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete table")

		return fmt.Errorf("failed to delete table: %w", err)
	}

	s.invalidateCaches(ctx, restaurantID)

	return nil
}

func (s *serviceImpl) ensureRestaurant(ctx context.Context, restaurantID string) error {
	exist, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check restaurant")

		return fmt.Errorf("failed to check restaurant: %w", err)
	}

	if !exist {
		return failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getTable(ctx context.Context, restaurantID, tableID string) (model.Table, error) {
	table, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: tableID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return table, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty {
		return table, failure.NotFound("table not found") // nolint:wrapcheck
	}

	return table, nil
}

// invalidateCaches drops the restaurant details and availability entries after
// any table mutation, since both derive from the table set.
func (s *serviceImpl) invalidateCaches(ctx context.Context, restaurantID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyRestaurantPrefix, restaurantID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailabilityPrefix, restaurantID))
	}()
}

func tableNumberFilter(restaurantID string, tableNumber int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTableNumber, Value: tableNumber, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func confirmedOnTableFilter(tableID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: reservationModel.FieldTableID, Value: tableID, Operator: gDto.FilterOperatorEq, Table: reservationModel.TableName},
			gDto.Filter{Field: reservationModel.FieldStatus, Value: reservationModel.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: reservationModel.TableName},
		},
	}
}
