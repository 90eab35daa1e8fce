package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Restaurant=MockRestaurantService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/internal/domains/restaurant/model"
	"tablebook/internal/domains/restaurant/model/dto"
	"tablebook/internal/domains/restaurant/repository"
	reservationModel "tablebook/internal/domains/reservation/model"
	reservationRepo "tablebook/internal/domains/reservation/repository"
	tableModel "tablebook/internal/domains/table/model"
	tableRepo "tablebook/internal/domains/table/repository"
	"tablebook/shared"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/timeslot"
)

type Restaurant interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (dto.RestaurantResponse, error)
	GetByID(ctx context.Context, restaurantID string) (dto.RestaurantResponse, error)
	GetDetails(ctx context.Context, restaurantID string) (dto.RestaurantDetailsResponse, error)
	Update(ctx context.Context, restaurantID string, req dto.UpdateRestaurantRequest) (dto.RestaurantResponse, error)
}

type serviceImpl struct {
	repo            repository.Restaurant
	tableRepo       tableRepo.Table
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Restaurant, tableRepo tableRepo.Table, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Restaurant {
	return &serviceImpl{
		repo:            repo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRestaurantRequest) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	opening, err := timeslot.ToMinutes(req.OpeningTime)
	if err != nil {
		return res, err
	}

	closing, err := timeslot.ToMinutes(req.ClosingTime)
	if err != nil {
		return res, err
	}

	if opening >= closing {
		return res, failure.BadRequestFromString("opening time must be before closing time") // nolint:wrapcheck
	}

	restaurant, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to build restaurant model")

		return res, fmt.Errorf("failed to build restaurant model: %w", err)
	}

	err = s.repo.Insert(ctx, restaurant)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert restaurant")

		return res, fmt.Errorf("failed to insert restaurant: %w", err)
	}

	res.FromModel(restaurant)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, restaurantID string) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	res.FromModel(restaurant)

	return res, nil
}

func (s *serviceImpl) GetDetails(ctx context.Context, restaurantID string) (res dto.RestaurantDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyRestaurantPrefix, restaurantID, "details")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant details")

		return res, nil
	}

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	tables, err := s.tableRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: tableModel.FieldTableNumber, SortDir: "ASC"},
		shared.FilterByID(restaurantID, tableModel.FieldRestaurantID, tableModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	reservations, err := s.reservationRepo.GetAll(
		ctx,
		gDto.QueryParams{},
		shared.FilterByID(restaurantID, reservationModel.FieldRestaurantID, reservationModel.TableName),
		reservationModel.FieldID, reservationModel.FieldStatus,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModel(restaurant)

	res.Tables = make([]dto.RestaurantTableResponse, len(tables))
	for i, table := range tables {
		res.Tables[i] = dto.RestaurantTableResponse{
			ID:          table.ID,
			TableNumber: table.TableNumber,
			Capacity:    table.Capacity,
		}
	}

	res.ReservationCounts = map[string]int{}
	for _, reservation := range reservations {
		res.ReservationCounts[reservation.Status]++
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant details to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, restaurantID string, req dto.UpdateRestaurantRequest) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	// Hours are only cross-checked when both sides arrive in one request. A
	// single-sided update can leave opening >= closing; the availability
	// engine treats that as a venue with no bookable slots.
	if req.OpeningTime != constant.Empty && req.ClosingTime != constant.Empty {
		opening, err := timeslot.ToMinutes(req.OpeningTime)
		if err != nil {
			return res, err
		}

		closing, err := timeslot.ToMinutes(req.ClosingTime)
		if err != nil {
			return res, err
		}

		if opening >= closing {
			return res, failure.BadRequestFromString("opening time must be before closing time") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req)

	if req.OpeningTime != constant.Empty {
		opening, err := time.Parse(constant.ClockFormat, req.OpeningTime)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %s, expected HH:MM", req.OpeningTime)) // nolint:wrapcheck
		}

		updatedFields[model.FieldOpeningTime] = opening
	}

	if req.ClosingTime != constant.Empty {
		closing, err := time.Parse(constant.ClockFormat, req.ClosingTime)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %s, expected HH:MM", req.ClosingTime)) // nolint:wrapcheck
		}

		updatedFields[model.FieldClosingTime] = closing
	}

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(restaurantID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update restaurant")

		return res, fmt.Errorf("failed to update restaurant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyRestaurantPrefix, restaurantID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailabilityPrefix, restaurantID))
	}()

	restaurant, err = s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	res.FromModel(restaurant)

	return res, nil
}

func (s *serviceImpl) getRestaurant(ctx context.Context, restaurantID string) (model.Restaurant, error) {
	restaurant, err := s.repo.Get(ctx, shared.FilterByID(restaurantID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return restaurant, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return restaurant, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	return restaurant, nil
}
