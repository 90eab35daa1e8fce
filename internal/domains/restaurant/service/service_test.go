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
	reservationMocks "tablebook/internal/domains/reservation/mocks"
	reservationModel "tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/restaurant/mocks"
	"tablebook/internal/domains/restaurant/model"
	"tablebook/internal/domains/restaurant/model/dto"
	"tablebook/internal/domains/restaurant/service"
	tableMocks "tablebook/internal/domains/table/mocks"
	tableModel "tablebook/internal/domains/table/model"
	cacheMocks "tablebook/shared/cache/mocks"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
)

type restaurantFixture struct {
	repo         *mocks.MockRestaurant
	tables       *tableMocks.MockTable
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Restaurant
}

func newFixture(t *testing.T) *restaurantFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f := &restaurantFixture{
		repo:         mocks.NewMockRestaurant(ctrl),
		tables:       tableMocks.NewMockTable(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.tables, f.reservations, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func existing(t *testing.T) model.Restaurant {
	t.Helper()

	opening, err := time.Parse(constant.ClockFormat, "10:00")
	assert.NoError(t, err)

	closing, err := time.Parse(constant.ClockFormat, "22:00")
	assert.NoError(t, err)

	return model.Restaurant{
		ID:          "resto-1",
		Name:        "Trattoria Nonna",
		OpeningTime: opening,
		ClosingTime: closing,
	}
}

func TestRestaurantCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("opening must precede closing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, dto.CreateRestaurantRequest{
			Name:        "Backwards Bistro",
			OpeningTime: "22:00",
			ClosingTime: "10:00",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success returns the new restaurant", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

		res, err := f.svc.Create(ctx, dto.CreateRestaurantRequest{
			Name:        "Trattoria Nonna",
			OpeningTime: "10:00",
			ClosingTime: "22:00",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "10:00", res.OpeningTime)
		assert.Equal(t, "22:00", res.ClosingTime)
	})
}

func TestRestaurantGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Restaurant{}, nil)

		_, err := f.svc.GetByID(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(existing(t), nil)

		res, err := f.svc.GetByID(ctx, "resto-1")

		assert.NoError(t, err)
		assert.Equal(t, "Trattoria Nonna", res.Name)
	})
}

func TestRestaurantGetDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates tables and reservation counts", func(t *testing.T) {
		f := newFixture(t)

		tables := []tableModel.Table{
			{ID: "t1", RestaurantID: "resto-1", TableNumber: 1, Capacity: 2},
			{ID: "t2", RestaurantID: "resto-1", TableNumber: 2, Capacity: 6},
		}
		reservations := []reservationModel.Reservation{
			{ID: "rsv-1", Status: reservationModel.StatusConfirmed},
			{ID: "rsv-2", Status: reservationModel.StatusConfirmed},
			{ID: "rsv-3", Status: reservationModel.StatusCancelled},
		}

		f.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(existing(t), nil)
		f.tables.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(tables, nil)
		f.reservations.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(reservations, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := f.svc.GetDetails(ctx, "resto-1")

		assert.NoError(t, err)
		assert.Len(t, res.Tables, 2)
		assert.Equal(t, 2, res.ReservationCounts[reservationModel.StatusConfirmed])
		assert.Equal(t, 1, res.ReservationCounts[reservationModel.StatusCancelled])

		time.Sleep(10 * time.Millisecond)
	})
}

func TestRestaurantUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Restaurant{}, nil)

		_, err := f.svc.Update(ctx, "missing", dto.UpdateRestaurantRequest{Name: "New Name"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("both hours must stay ordered", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(existing(t), nil)

		_, err := f.svc.Update(ctx, "resto-1", dto.UpdateRestaurantRequest{
			OpeningTime: "23:00",
			ClosingTime: "11:00",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("persists the change and drops caches", func(t *testing.T) {
		f := newFixture(t)
		updated := existing(t)
		updated.Name = "Trattoria Nuova"

		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(existing(t), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(updated, nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Update(ctx, "resto-1", dto.UpdateRestaurantRequest{Name: "Trattoria Nuova"})

		assert.NoError(t, err)
		assert.Equal(t, "Trattoria Nuova", res.Name)

		time.Sleep(10 * time.Millisecond)
	})
}
