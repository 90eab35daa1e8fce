package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"tablebook/config"
	"tablebook/infras/kafka"
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
	"tablebook/shared/mailer"
	"tablebook/shared/timeslot"
	"tablebook/shared/timezone"
)

// WaitlistNotifier receives the freed slot after a cancellation. Implemented by
// the waitlist service; failures are logged and never surfaced to the caller.
type WaitlistNotifier interface {
	NotifyOnCancellation(ctx context.Context, restaurantID string, date time.Time, freedStartMinutes, freedDurationMinutes int) error
}

type Reservation interface {
	Create(ctx context.Context, restaurantID string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Modify(ctx context.Context, restaurantID, reservationID string, req dto.ModifyReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, restaurantID, reservationID string) error
	GetByID(ctx context.Context, restaurantID, reservationID string) (dto.ReservationResponse, error)
	ListByDate(ctx context.Context, restaurantID, date, status string) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo           repository.Reservation
	restaurantRepo restaurantRepo.Restaurant
	tableRepo      tableRepo.Table
	availability   Availability
	notifier       WaitlistNotifier
	mailer         mailer.Mailer
	kafka          kafka.Client
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Reservation,
	restaurantRepo restaurantRepo.Restaurant,
	tableRepo tableRepo.Table,
	availability Availability,
	notifier WaitlistNotifier,
	mailer mailer.Mailer,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		availability:   availability,
		notifier:       notifier,
		mailer:         mailer,
		kafka:          kafka,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, restaurantID string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	if req.Date < timezone.Now().Format(constant.DateOnly) {
		return res, failure.BadRequestFromString("cannot create a reservation for a past date") // nolint:wrapcheck
	}

	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = s.cfg.Booking.DefaultDurationMinutes
	}

	if durationMinutes < s.cfg.Booking.MinDurationMinutes || durationMinutes > s.cfg.Booking.MaxDurationMinutes {
		return res, failure.BadRequestFromString(fmt.Sprintf(
			"duration must be between %d and %d minutes",
			s.cfg.Booking.MinDurationMinutes, s.cfg.Booking.MaxDurationMinutes,
		)) // nolint:wrapcheck
	}

	startMinutes, err := timeslot.ToMinutes(req.StartTime)
	if err != nil {
		return res, err
	}

	endMinutes := startMinutes + durationMinutes
	if !timeslot.WithinHours(restaurant.OpeningMinutes(), restaurant.ClosingMinutes(), startMinutes, endMinutes) {
		return res, failure.BadRequestFromString("reservation must fall within opening hours") // nolint:wrapcheck
	}

	tables, err := s.tableRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(restaurantID, tableModel.FieldRestaurantID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	if req.PartySize > maxCapacity(tables) {
		return res, failure.BadRequestFromString("party size exceeds the largest table capacity") // nolint:wrapcheck
	}

	var reservation model.Reservation

	for attempt := 1; attempt <= s.cfg.Booking.MaxAttempts; attempt++ {
		reservation, err = s.createInTx(ctx, restaurant, tables, req, startMinutes, durationMinutes)
		if err == nil {
			break
		}

		if !failure.Retryable(err) {
			return res, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying reservation after transient conflict")
	}

	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, constant.KafkaTopicReservationCreated, reservation, restaurant.Name, s.mailer.SendConfirmation)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) createInTx(ctx context.Context, restaurant restaurantModel.Restaurant, tables []tableModel.Table, req dto.CreateReservationRequest, startMinutes, durationMinutes int) (model.Reservation, error) {
	var reservation model.Reservation

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return reservation, err // nolint:wrapcheck
	}

	reservation, err = s.assignAndInsert(ctx, sqltx, restaurant, tables, req, startMinutes, durationMinutes)
	if err != nil {
		if rbErr := sqltx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back reservation transaction")
		}

		return reservation, classifyBookingError(err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit reservation transaction")

		return reservation, classifyBookingError(err)
	}

	return reservation, nil
}

// assignAndInsert is the booking critical section. The advisory lock serializes
// every writer contending on the same restaurant and date, so the duplicate
// check and table search cannot race a concurrent insert.
func (s *serviceImpl) assignAndInsert(ctx context.Context, sqltx *sqlx.Tx, restaurant restaurantModel.Restaurant, tables []tableModel.Table, req dto.CreateReservationRequest, startMinutes, durationMinutes int) (model.Reservation, error) {
	var reservation model.Reservation

	err := s.repo.AdvisoryLockTx(ctx, sqltx, lockKey(restaurant.ID), lockKey(req.Date))
	if err != nil {
		return reservation, err // nolint:wrapcheck
	}

	startTime, err := time.Parse(constant.ClockFormat, timeslot.ToClock(startMinutes))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse start time")

		return reservation, fmt.Errorf("failed to parse start time: %w", err)
	}

	duplicate, err := s.repo.ExistTx(ctx, sqltx, duplicateGuestFilter(restaurant.ID, req.CustomerEmail, req.Date, startTime))
	if err != nil {
		return reservation, err // nolint:wrapcheck
	}

	if duplicate {
		return reservation, failure.Conflict("a confirmed reservation already exists for this guest and time slot") // nolint:wrapcheck
	}

	date, err := time.Parse(constant.DateOnly, req.Date)
	if err != nil {
		return reservation, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %s, expected YYYY-MM-DD", req.Date)) // nolint:wrapcheck
	}

	table, err := s.availability.FindSuitableTableTx(ctx, sqltx, restaurant, tables, date, req.PartySize, startMinutes, durationMinutes)
	if err != nil {
		return reservation, err
	}

	if table == nil {
		return reservation, failure.Conflict("no available tables for this time slot") // nolint:wrapcheck
	}

	reservation, err = req.ToModel(restaurant.ID, table.ID, timeslot.ToClock(startMinutes+durationMinutes), durationMinutes)
	if err != nil {
		log.Error().Err(err).Msg("failed to build reservation model")

		return reservation, fmt.Errorf("failed to build reservation model: %w", err)
	}

	err = s.repo.InsertTx(ctx, sqltx, reservation)
	if err != nil {
		return reservation, err // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) Modify(ctx context.Context, restaurantID, reservationID string, req dto.ModifyReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Modify")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return res, err
	}

	if reservation.Status == model.StatusCancelled {
		return res, failure.Conflict("cannot modify a cancelled reservation") // nolint:wrapcheck
	}

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	// A larger party must still fit the table the reservation already holds;
	// growing the party never triggers a reassignment on its own.
	if req.PartySize != 0 {
		assigned, err := s.tableRepo.Get(ctx, shared.FilterByID(reservation.TableID, tableModel.FieldID, tableModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get assigned table")

			return res, fmt.Errorf("failed to get assigned table: %w", err)
		}

		if req.PartySize > assigned.Capacity {
			return res, failure.BadRequestFromString("party size exceeds table capacity") // nolint:wrapcheck
		}
	}

	partySize := reservation.PartySize
	if req.PartySize != 0 {
		partySize = req.PartySize
	}

	tableID := reservation.TableID
	startTime := reservation.StartTime
	endTime := reservation.EndTime
	durationMinutes := reservation.DurationMinutes

	if req.StartTime != constant.Empty || req.DurationMinutes != 0 {
		startMinutes := reservation.StartMinutes()

		if req.StartTime != constant.Empty {
			startMinutes, err = timeslot.ToMinutes(req.StartTime)
			if err != nil {
				return res, err
			}
		}

		if req.DurationMinutes != 0 {
			durationMinutes = req.DurationMinutes

			if durationMinutes < s.cfg.Booking.MinDurationMinutes || durationMinutes > s.cfg.Booking.MaxDurationMinutes {
				return res, failure.BadRequestFromString(fmt.Sprintf(
					"duration must be between %d and %d minutes",
					s.cfg.Booking.MinDurationMinutes, s.cfg.Booking.MaxDurationMinutes,
				)) // nolint:wrapcheck
			}
		}

		endMinutes := startMinutes + durationMinutes
		if !timeslot.WithinHours(restaurant.OpeningMinutes(), restaurant.ClosingMinutes(), startMinutes, endMinutes) {
			return res, failure.BadRequestFromString("reservation must fall within opening hours") // nolint:wrapcheck
		}

		// The reservation's own slot is excluded from the conflict set, so an
		// unchanged time simply reconfirms (or silently reassigns) a table.
		table, err := s.availability.FindSuitableTable(ctx, restaurantID, reservation.Date, partySize, startMinutes, durationMinutes, reservation.ID)
		if err != nil {
			return res, err
		}

		if table == nil {
			return res, failure.Conflict("no available tables for this time slot") // nolint:wrapcheck
		}

		tableID = table.ID

		startTime, err = time.Parse(constant.ClockFormat, timeslot.ToClock(startMinutes))
		if err != nil {
			return res, fmt.Errorf("failed to parse start time: %w", err)
		}

		endTime, err = time.Parse(constant.ClockFormat, timeslot.ToClock(endMinutes))
		if err != nil {
			return res, fmt.Errorf("failed to parse end time: %w", err)
		}
	}

	updatedFields := map[string]any{
		model.FieldTableID:         tableID,
		model.FieldPartySize:       partySize,
		model.FieldStartTime:       startTime,
		model.FieldEndTime:         endTime,
		model.FieldDurationMinutes: durationMinutes,
		constant.FieldModifiedAt:   timezone.Now(),
	}

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	reservation.TableID = tableID
	reservation.PartySize = partySize
	reservation.StartTime = startTime
	reservation.EndTime = endTime
	reservation.DurationMinutes = durationMinutes
	reservation.ModifiedAt = timezone.Now()

	s.afterWrite(ctx, constant.KafkaTopicReservationModified, reservation, restaurant.Name, s.mailer.SendModification)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, restaurantID, reservationID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCancelled {
		return failure.Conflict("reservation is already cancelled") // nolint:wrapcheck
	}

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
	}

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = model.StatusCancelled

	s.afterWrite(ctx, constant.KafkaTopicReservationCancelled, reservation, restaurant.Name, s.mailer.SendCancellation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.NotifyOnCancellation(c, restaurantID, reservation.Date, reservation.StartMinutes(), reservation.DurationMinutes); err != nil {
			log.Error().Err(err).Str("reservationID", reservationID).Msg("waitlist notification sweep failed")
		}
	}()

	return nil
}

func (s *serviceImpl) GetByID(ctx context.Context, restaurantID, reservationID string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getReservation(ctx, restaurantID, reservationID)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) ListByDate(ctx context.Context, restaurantID, date, status string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !timeslot.IsDate(date) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %s, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	if status != constant.Empty && !validStatus(status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", status)) // nolint:wrapcheck
	}

	_, err = s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	filters := []any{
		gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	reservations, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: "ASC"},
		gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations)

	return res, nil
}

// afterWrite runs the best-effort side effects of a successful write: the
// guest mail, the event stream, and cache invalidation. None of them can fail
// the request.
func (s *serviceImpl) afterWrite(ctx context.Context, topic string, reservation model.Reservation, restaurantName string, send func(context.Context, mailer.Details) error) {
	go func() {
		c := context.WithoutCancel(ctx)

		details := mailer.Details{
			To:             reservation.CustomerEmail,
			CustomerName:   reservation.CustomerName,
			RestaurantName: restaurantName,
			Date:           reservation.Date.Format(constant.DateOnly),
			StartTime:      reservation.StartTime.Format(constant.ClockFormat),
			EndTime:        reservation.EndTime.Format(constant.ClockFormat),
			PartySize:      reservation.PartySize,
		}
		if err := send(c, details); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to send reservation mail")
		}

		if s.cfg.Kafka.Enable {
			var event dto.ReservationResponse
			event.FromModel(reservation)

			if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: reservation.ID, Value: event}); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("failed to publish reservation event")
			}
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailabilityPrefix, reservation.RestaurantID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyRestaurantPrefix, reservation.RestaurantID))
	}()
}

func (s *serviceImpl) getRestaurant(ctx context.Context, restaurantID string) (restaurantModel.Restaurant, error) {
	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return restaurant, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return restaurant, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	return restaurant, nil
}

func (s *serviceImpl) getReservation(ctx context.Context, restaurantID, reservationID string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// classifyBookingError marks serialization and deadlock losses as retryable so
// Create can re-run the critical section.
func classifyBookingError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeSerializationFailure, constant.PqErrorCodeDeadlockDetected:
			return failure.SerializationConflict("reservation lost a concurrent booking race") // nolint:wrapcheck
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict("a conflicting reservation already exists") // nolint:wrapcheck
		}
	}

	return err
}

func duplicateGuestFilter(restaurantID, email, date string, startTime time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldCustomerEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStartTime, Value: startTime, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func maxCapacity(tables []tableModel.Table) int {
	capacity := 0

	for _, table := range tables {
		if table.Capacity > capacity {
			capacity = table.Capacity
		}
	}

	return capacity
}

func validStatus(status string) bool {
	switch status {
	case model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled:
		return true
	}

	return false
}

func lockKey(s string) int32 {
	hasher := fnv.New32a()
	hasher.Write([]byte(s))

	return int32(hasher.Sum32()) // nolint:gosec
}
