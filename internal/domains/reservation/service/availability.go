package service

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=../mocks/availability_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"tablebook/config"
	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/model/dto"
	"tablebook/internal/domains/reservation/repository"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	restaurantRepo "tablebook/internal/domains/restaurant/repository"
	tableModel "tablebook/internal/domains/table/model"
	tableRepo "tablebook/internal/domains/table/repository"
	"tablebook/shared"
	"tablebook/shared/cache"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/timeslot"
)

// BuildAvailableSlots enumerates bookable slots for the given party size and
// duration. Candidate starts step from opening in increment-minute strides and
// must end by closing. A slot qualifies only when EVERY table large enough for
// the party is free there; the reported table is the smallest suitable one.
// Malformed operating hours produce an empty result.
func BuildAvailableSlots(openingMinutes, closingMinutes int, tables []tableModel.Table, reservations []model.Reservation, partySize, durationMinutes, incrementMinutes int) []dto.AvailableSlot {
	slots := []dto.AvailableSlot{}

	if openingMinutes >= closingMinutes || durationMinutes <= 0 || incrementMinutes <= 0 {
		return slots
	}

	suitable := suitableTables(tables, partySize)
	if len(suitable) == 0 {
		return slots
	}

	byTable := reservationsByTable(reservations)

	for start := openingMinutes; start+durationMinutes <= closingMinutes; start += incrementMinutes {
		end := start + durationMinutes

		allFree := true

		for _, table := range suitable {
			if !tableFree(byTable[table.ID], start, end, constant.Empty) {
				allFree = false

				break
			}
		}

		if allFree {
			slots = append(slots, dto.AvailableSlot{
				StartTime:   timeslot.ToClock(start),
				EndTime:     timeslot.ToClock(end),
				TableNumber: suitable[0].TableNumber,
				Capacity:    suitable[0].Capacity,
			})
		}
	}

	return slots
}

// PickSuitableTable returns the smallest free table that fits the party at
// [startMinutes, startMinutes+durationMinutes), or nil when the window runs
// past closing or every fitting table is taken. excludeReservationID skips one
// reservation from the conflict set, letting a modification reconsider its own
// slot.
func PickSuitableTable(closingMinutes int, tables []tableModel.Table, reservations []model.Reservation, partySize, startMinutes, durationMinutes int, excludeReservationID string) *tableModel.Table {
	endMinutes := startMinutes + durationMinutes
	if endMinutes > closingMinutes {
		return nil
	}

	byTable := reservationsByTable(reservations)

	for _, table := range suitableTables(tables, partySize) {
		if tableFree(byTable[table.ID], startMinutes, endMinutes, excludeReservationID) {
			return &table
		}
	}

	return nil
}

// suitableTables filters to capacity >= partySize, smallest capacity first.
func suitableTables(tables []tableModel.Table, partySize int) []tableModel.Table {
	suitable := []tableModel.Table{}

	for _, table := range tables {
		if table.Capacity >= partySize {
			suitable = append(suitable, table)
		}
	}

	slices.SortStableFunc(suitable, func(a, b tableModel.Table) int {
		if a.Capacity != b.Capacity {
			return a.Capacity - b.Capacity
		}

		return a.TableNumber - b.TableNumber
	})

	return suitable
}

func reservationsByTable(reservations []model.Reservation) map[string][]model.Reservation {
	byTable := map[string][]model.Reservation{}

	for _, reservation := range reservations {
		if reservation.Status != model.StatusConfirmed {
			continue
		}

		byTable[reservation.TableID] = append(byTable[reservation.TableID], reservation)
	}

	return byTable
}

func tableFree(reservations []model.Reservation, startMinutes, endMinutes int, excludeReservationID string) bool {
	for _, reservation := range reservations {
		if excludeReservationID != constant.Empty && reservation.ID == excludeReservationID {
			continue
		}

		if timeslot.Overlaps(reservation.StartMinutes(), reservation.EndMinutes(), startMinutes, endMinutes) {
			return false
		}
	}

	return true
}

type Availability interface {
	Slots(ctx context.Context, restaurantID, date string, partySize, durationMinutes int) (dto.AvailabilityResponse, error)
	FindSuitableTable(ctx context.Context, restaurantID string, date time.Time, partySize, startMinutes, durationMinutes int, excludeReservationID string) (*tableModel.Table, error)
	FindSuitableTableTx(ctx context.Context, sqltx *sqlx.Tx, restaurant restaurantModel.Restaurant, tables []tableModel.Table, date time.Time, partySize, startMinutes, durationMinutes int) (*tableModel.Table, error)
}

type availabilityImpl struct {
	repo           repository.Reservation
	restaurantRepo restaurantRepo.Restaurant
	tableRepo      tableRepo.Table
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func NewAvailability(repo repository.Reservation, restaurantRepo restaurantRepo.Restaurant, tableRepo tableRepo.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &availabilityImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *availabilityImpl) Slots(ctx context.Context, restaurantID, date string, partySize, durationMinutes int) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !timeslot.IsDate(date) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %s, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	if partySize < 1 {
		return res, failure.BadRequestFromString("party size must be at least 1") // nolint:wrapcheck
	}

	if durationMinutes == 0 {
		durationMinutes = s.cfg.Booking.DefaultSlotMinutes
	}

	if durationMinutes < s.cfg.Booking.MinDurationMinutes || durationMinutes > s.cfg.Booking.MaxDurationMinutes {
		return res, failure.BadRequestFromString(fmt.Sprintf(
			"duration must be between %d and %d minutes",
			s.cfg.Booking.MinDurationMinutes, s.cfg.Booking.MaxDurationMinutes,
		)) // nolint:wrapcheck
	}

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(
		constant.CacheKeyAvailabilityPrefix,
		restaurantID,
		date,
		strconv.Itoa(partySize),
		strconv.Itoa(durationMinutes),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	tables, err := s.tableRepo.GetAll(ctx, gDto.QueryParams{}, tablesOfRestaurantFilter(restaurantID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, confirmedOnDateFilter(restaurantID, date))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = dto.AvailabilityResponse{
		RestaurantID:    restaurantID,
		Date:            date,
		PartySize:       partySize,
		DurationMinutes: durationMinutes,
		Slots: BuildAvailableSlots(
			restaurant.OpeningMinutes(),
			restaurant.ClosingMinutes(),
			tables,
			reservations,
			partySize,
			durationMinutes,
			s.cfg.Booking.TimeIncrementMinutes,
		),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *availabilityImpl) FindSuitableTable(ctx context.Context, restaurantID string, date time.Time, partySize, startMinutes, durationMinutes int, excludeReservationID string) (res *tableModel.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindSuitableTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return nil, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	tables, err := s.tableRepo.GetAll(ctx, gDto.QueryParams{}, tablesOfRestaurantFilter(restaurantID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, confirmedOnDateFilter(restaurantID, date.Format(constant.DateOnly)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	return PickSuitableTable(restaurant.ClosingMinutes(), tables, reservations, partySize, startMinutes, durationMinutes, excludeReservationID), nil
}

// FindSuitableTableTx runs the table search through the caller's transaction so
// the booking critical section sees reservations committed by writers it was
// serialized behind.
func (s *availabilityImpl) FindSuitableTableTx(ctx context.Context, sqltx *sqlx.Tx, restaurant restaurantModel.Restaurant, tables []tableModel.Table, date time.Time, partySize, startMinutes, durationMinutes int) (res *tableModel.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindSuitableTableTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, confirmedOnDateFilter(restaurant.ID, date.Format(constant.DateOnly)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations in transaction")

		return nil, fmt.Errorf("failed to get reservations in transaction: %w", err)
	}

	return PickSuitableTable(restaurant.ClosingMinutes(), tables, reservations, partySize, startMinutes, durationMinutes, constant.Empty), nil
}

func tablesOfRestaurantFilter(restaurantID string) gDto.FilterGroup {
	return shared.FilterByID(restaurantID, tableModel.FieldRestaurantID, tableModel.TableName)
}

func confirmedOnDateFilter(restaurantID, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
