package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"tablebook/config"
	otelMocks "tablebook/infras/otel/mocks"
	"tablebook/internal/domains/reservation/mocks"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/service"
	restaurantMocks "tablebook/internal/domains/restaurant/mocks"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	tableMocks "tablebook/internal/domains/table/mocks"
	tableModel "tablebook/internal/domains/table/model"
	cacheMocks "tablebook/shared/cache/mocks"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
)

type availabilityFixture struct {
	repo        *mocks.MockReservation
	restaurants *restaurantMocks.MockRestaurant
	tables      *tableMocks.MockTable
	cache       *cacheMocks.MockRedisCache
	svc         service.Availability
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Booking.MinDurationMinutes = constant.MinDurationMinutes
	cfg.Booking.MaxDurationMinutes = constant.MaxDurationMinutes
	cfg.Booking.DefaultSlotMinutes = constant.DefaultSlotMinutes
	cfg.Booking.TimeIncrementMinutes = constant.TimeIncrementMinutes
	cfg.Cache.TTL = 300

	f := &availabilityFixture{
		repo:        mocks.NewMockReservation(ctrl),
		restaurants: restaurantMocks.NewMockRestaurant(ctrl),
		tables:      tableMocks.NewMockTable(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.NewAvailability(f.repo, f.restaurants, f.tables, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func TestAvailabilitySlots(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid date rejected", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.Slots(ctx, "resto-1", "01/06/2026", 2, 60)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("party size below one rejected", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.Slots(ctx, "resto-1", "2026-06-01", 0, 60)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("duration out of bounds rejected", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.Slots(ctx, "resto-1", "2026-06-01", 2, 500)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("restaurant not found", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(restaurantModel.Restaurant{}, nil)

		_, err := f.svc.Slots(ctx, "missing", "2026-06-01", 2, 60)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache miss builds and caches the slot list", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		venueTables := []tableModel.Table{newTable("t1", 1, 4), newTable("t2", 2, 6)}
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusConfirmed),
		}

		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(t), nil)
		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.tables.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(venueTables, nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(reservations, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := f.svc.Slots(ctx, "resto-1", "2026-06-01", 2, 60)

		assert.NoError(t, err)
		assert.Equal(t, "resto-1", res.RestaurantID)
		assert.Equal(t, 60, res.DurationMinutes)
		assert.NotEmpty(t, res.Slots)

		for _, slot := range res.Slots {
			assert.NotEqual(t, "19:00", slot.StartTime)
			assert.NotEqual(t, "20:30", slot.StartTime)
		}

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("zero duration falls back to the default window", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		venueTables := []tableModel.Table{newTable("t1", 1, 4)}

		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(t), nil)
		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.tables.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(venueTables, nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := f.svc.Slots(ctx, "resto-1", "2026-06-01", 2, 0)

		assert.NoError(t, err)
		assert.Equal(t, constant.DefaultSlotMinutes, res.DurationMinutes)

		time.Sleep(10 * time.Millisecond)
	})
}
