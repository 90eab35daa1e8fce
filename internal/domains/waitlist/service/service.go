package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Waitlist=MockWaitlistService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"tablebook/config"
	"tablebook/infras/kafka"
	"tablebook/infras/otel"
	reservationService "tablebook/internal/domains/reservation/service"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	restaurantRepo "tablebook/internal/domains/restaurant/repository"
	"tablebook/internal/domains/waitlist/model"
	"tablebook/internal/domains/waitlist/model/dto"
	"tablebook/internal/domains/waitlist/repository"
	"tablebook/shared"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/mailer"
	"tablebook/shared/timeslot"
	"tablebook/shared/timezone"
)

type Waitlist interface {
	reservationService.WaitlistNotifier

	Add(ctx context.Context, restaurantID string, req dto.AddWaitlistEntryRequest) (dto.WaitlistEntryResponse, error)
	List(ctx context.Context, restaurantID, status string) (dto.GetWaitlistResponse, error)
	UpdateStatus(ctx context.Context, restaurantID, waitlistID string, req dto.UpdateWaitlistStatusRequest) (dto.WaitlistEntryResponse, error)
}

type serviceImpl struct {
	repo           repository.Waitlist
	restaurantRepo restaurantRepo.Restaurant
	availability   reservationService.Availability
	mailer         mailer.Mailer
	kafka          kafka.Client
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	repo repository.Waitlist,
	restaurantRepo restaurantRepo.Restaurant,
	availability reservationService.Availability,
	mailer mailer.Mailer,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Waitlist {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		availability:   availability,
		mailer:         mailer,
		kafka:          kafka,
		cfg:            cfg,
		otel:           otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, restaurantID string, req dto.AddWaitlistEntryRequest) (res dto.WaitlistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	entry, err := req.ToModel(restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to build waitlist entry model")

		return res, fmt.Errorf("failed to build waitlist entry model: %w", err)
	}

	err = s.repo.Insert(ctx, entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert waitlist entry")

		return res, fmt.Errorf("failed to insert waitlist entry: %w", err)
	}

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, restaurantID, status string) (res dto.GetWaitlistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if status != constant.Empty && !validStatus(status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", status)) // nolint:wrapcheck
	}

	_, err = s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return res, err
	}

	filters := []any{
		gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	entries, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"},
		gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get waitlist entries")

		return res, fmt.Errorf("failed to get waitlist entries: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, restaurantID, waitlistID string, req dto.UpdateWaitlistStatusRequest) (res dto.WaitlistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.getEntry(ctx, restaurantID, waitlistID)
	if err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req)

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(waitlistID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update waitlist entry")

		return res, fmt.Errorf("failed to update waitlist entry: %w", err)
	}

	entry.Status = req.Status
	entry.ModifiedAt = timezone.Now()

	res.FromModel(entry)

	return res, nil
}

// NotifyOnCancellation sweeps the WAITING entries for the freed date in arrival
// order and offers the slot to every party that now fits. Offers are advisory:
// no hold is placed, the guest still races everyone else for the table.
func (s *serviceImpl) NotifyOnCancellation(ctx context.Context, restaurantID string, date time.Time, freedStartMinutes, freedDurationMinutes int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyOnCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.getRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	entries, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"},
		waitingOnDateFilter(restaurantID, date.Format(constant.DateOnly)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get waitlist entries")

		return fmt.Errorf("failed to get waitlist entries: %w", err)
	}

	for _, entry := range entries {
		table, err := s.availability.FindSuitableTable(ctx, restaurantID, date, entry.PartySize, freedStartMinutes, freedDurationMinutes, constant.Empty)
		if err != nil {
			log.Error().Err(err).Str("waitlistID", entry.ID).Msg("failed to check availability for waitlist entry")

			continue
		}

		if table == nil {
			continue
		}

		s.notify(ctx, restaurant, entry, freedStartMinutes, freedDurationMinutes)
	}

	return nil
}

func (s *serviceImpl) notify(ctx context.Context, restaurant restaurantModel.Restaurant, entry model.WaitlistEntry, freedStartMinutes, freedDurationMinutes int) {
	details := mailer.Details{
		To:             entry.CustomerEmail,
		CustomerName:   entry.CustomerName,
		RestaurantName: restaurant.Name,
		Date:           entry.RequestedDate.Format(constant.DateOnly),
		StartTime:      timeslot.ToClock(freedStartMinutes),
		EndTime:        timeslot.ToClock(freedStartMinutes + freedDurationMinutes),
		PartySize:      entry.PartySize,
	}
	if err := s.mailer.SendWaitlistOffer(ctx, details); err != nil {
		log.Error().Err(err).Str("waitlistID", entry.ID).Msg("failed to send waitlist offer mail")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusNotified,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(entry.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("waitlistID", entry.ID).Msg("failed to mark waitlist entry notified")

		return
	}

	if s.cfg.Kafka.Enable {
		entry.Status = model.StatusNotified

		var event dto.WaitlistEntryResponse
		event.FromModel(entry)

		if err := s.kafka.SendMessages(ctx, constant.KafkaTopicWaitlistNotified, kafka.Message{Key: entry.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("waitlistID", entry.ID).Msg("failed to publish waitlist event")
		}
	}
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

func (s *serviceImpl) getEntry(ctx context.Context, restaurantID, waitlistID string) (model.WaitlistEntry, error) {
	entry, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: waitlistID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get waitlist entry")

		return entry, fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return entry, failure.NotFound("waitlist entry not found") // nolint:wrapcheck
	}

	return entry, nil
}

func validStatus(status string) bool {
	switch status {
	case model.StatusWaiting, model.StatusNotified, model.StatusExpired:
		return true
	}

	return false
}

func waitingOnDateFilter(restaurantID, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRestaurantID, Value: restaurantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRequestedDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusWaiting, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
