package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	otelMocks "tablebook/infras/otel/mocks"
	reservationMocks "tablebook/internal/domains/reservation/mocks"
	restaurantMocks "tablebook/internal/domains/restaurant/mocks"
	"tablebook/internal/domains/table/mocks"
	"tablebook/internal/domains/table/model"
	"tablebook/internal/domains/table/model/dto"
	"tablebook/internal/domains/table/service"
	cacheMocks "tablebook/shared/cache/mocks"
	"tablebook/shared/failure"
)

type tableFixture struct {
	repo         *mocks.MockTable
	restaurants  *restaurantMocks.MockRestaurant
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Table
}

func newFixture(t *testing.T) *tableFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &tableFixture{
		repo:         mocks.NewMockTable(ctrl),
		restaurants:  restaurantMocks.NewMockRestaurant(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.restaurants, f.reservations, f.cache, otelMocks.NewOtel())

	return f
}

func TestTableAdd(t *testing.T) {
	ctx := context.Background()
	req := dto.AddTableRequest{TableNumber: 3, Capacity: 4}

	t.Run("restaurant not found", func(t *testing.T) {
		f := newFixture(t)
		f.restaurants.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		_, err := f.svc.Add(ctx, "missing", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("duplicate table number conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.restaurants.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)

		_, err := f.svc.Add(ctx, "resto-1", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success returns the new table", func(t *testing.T) {
		f := newFixture(t)
		f.restaurants.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Add(ctx, "resto-1", req)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TableNumber)
		assert.Equal(t, 4, res.Capacity)
		assert.NotEmpty(t, res.ID)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestTableList(t *testing.T) {
	ctx := context.Background()

	t.Run("restaurant not found", func(t *testing.T) {
		f := newFixture(t)
		f.restaurants.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)

		_, err := f.svc.List(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns tables ordered by number", func(t *testing.T) {
		f := newFixture(t)
		tables := []model.Table{
			{ID: "t1", RestaurantID: "resto-1", TableNumber: 1, Capacity: 2},
			{ID: "t2", RestaurantID: "resto-1", TableNumber: 2, Capacity: 6},
		}

		f.restaurants.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(tables, nil)

		res, err := f.svc.List(ctx, "resto-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.Tables[0].TableNumber)
	})
}

func TestTableUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("table not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Table{}, nil)

		_, err := f.svc.Update(ctx, "resto-1", "missing", dto.UpdateTableRequest{Capacity: 6})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("capacity change persists", func(t *testing.T) {
		f := newFixture(t)
		table := model.Table{ID: "t1", RestaurantID: "resto-1", TableNumber: 1, Capacity: 2}

		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(table, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Update(ctx, "resto-1", "t1", dto.UpdateTableRequest{Capacity: 6})

		assert.NoError(t, err)
		assert.Equal(t, 6, res.Capacity)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestTableDelete(t *testing.T) {
	ctx := context.Background()
	table := model.Table{ID: "t1", RestaurantID: "resto-1", TableNumber: 1, Capacity: 4}

	t.Run("table not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.Table{}, nil)

		err := f.svc.Delete(ctx, "resto-1", "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blocked while confirmed reservations exist", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(table, nil)
		f.reservations.EXPECT().Exist(ctx, gomock.Any()).Return(true, nil)

		err := f.svc.Delete(ctx, "resto-1", "t1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success removes the table", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(table, nil)
		f.reservations.EXPECT().Exist(ctx, gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Delete(ctx, "resto-1", "t1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})
}
