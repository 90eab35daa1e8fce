package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"tablebook/config"
	kafkaMocks "tablebook/infras/kafka/mocks"
	otelMocks "tablebook/infras/otel/mocks"
	reservationMocks "tablebook/internal/domains/reservation/mocks"
	restaurantMocks "tablebook/internal/domains/restaurant/mocks"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	tableModel "tablebook/internal/domains/table/model"
	"tablebook/internal/domains/waitlist/mocks"
	"tablebook/internal/domains/waitlist/model"
	"tablebook/internal/domains/waitlist/model/dto"
	"tablebook/internal/domains/waitlist/service"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
	mailerMocks "tablebook/shared/mailer/mocks"
	"tablebook/shared/timezone"
)

type waitlistFixture struct {
	repo        *mocks.MockWaitlist
	restaurants *restaurantMocks.MockRestaurant
	avail       *reservationMocks.MockAvailability
	mail        *mailerMocks.MockMailer
	kafka       *kafkaMocks.MockClient
	svc         service.Waitlist
}

func newWaitlistFixture(t *testing.T) *waitlistFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Booking.MaxAttempts = constant.BookingMaxAttempts

	f := &waitlistFixture{
		repo:        mocks.NewMockWaitlist(ctrl),
		restaurants: restaurantMocks.NewMockRestaurant(ctrl),
		avail:       reservationMocks.NewMockAvailability(ctrl),
		mail:        mailerMocks.NewMockMailer(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	f.svc = service.New(f.repo, f.restaurants, f.avail, f.mail, f.kafka, cfg, otelMocks.NewOtel())

	return f
}

func testRestaurant() restaurantModel.Restaurant {
	return restaurantModel.Restaurant{
		ID:   "resto-1",
		Name: "Trattoria Nonna",
	}
}

func newEntry(t *testing.T, id string, partySize int, status string) model.WaitlistEntry {
	t.Helper()

	requestedDate, err := time.Parse(constant.DateOnly, "2026-06-01")
	assert.NoError(t, err)

	requestedTime, err := time.Parse(constant.ClockFormat, "19:00")
	assert.NoError(t, err)

	return model.WaitlistEntry{
		ID:            id,
		RestaurantID:  "resto-1",
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
		PartySize:     partySize,
		RequestedDate: requestedDate,
		RequestedTime: requestedTime,
		Status:        status,
	}
}

func TestWaitlistAdd(t *testing.T) {
	ctx := context.Background()

	req := dto.AddWaitlistEntryRequest{
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
		PartySize:     4,
		RequestedDate: timezone.Now().AddDate(0, 0, 3).Format(constant.DateOnly),
		RequestedTime: "19:00",
	}

	t.Run("restaurant not found", func(t *testing.T) {
		f := newWaitlistFixture(t)
		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(restaurantModel.Restaurant{}, nil)

		_, err := f.svc.Add(ctx, "missing", req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("new entries start waiting", func(t *testing.T) {
		f := newWaitlistFixture(t)
		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(), nil)
		f.repo.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

		res, err := f.svc.Add(ctx, "resto-1", req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusWaiting, res.Status)
		assert.Equal(t, "19:00", res.RequestedTime)
		assert.NotEmpty(t, res.ID)
	})
}

func TestWaitlistList(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status rejected", func(t *testing.T) {
		f := newWaitlistFixture(t)

		_, err := f.svc.List(ctx, "resto-1", "archived")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("returns entries in arrival order", func(t *testing.T) {
		f := newWaitlistFixture(t)
		entries := []model.WaitlistEntry{
			newEntry(t, "w1", 2, model.StatusWaiting),
			newEntry(t, "w2", 4, model.StatusWaiting),
		}

		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(), nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(entries, nil)

		res, err := f.svc.List(ctx, "resto-1", model.StatusWaiting)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "w1", res.Entries[0].ID)
	})
}

func TestWaitlistUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("entry not found", func(t *testing.T) {
		f := newWaitlistFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(model.WaitlistEntry{}, nil)

		_, err := f.svc.UpdateStatus(ctx, "resto-1", "missing", dto.UpdateWaitlistStatusRequest{Status: model.StatusExpired})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("status change persists", func(t *testing.T) {
		f := newWaitlistFixture(t)
		f.repo.EXPECT().Get(ctx, gomock.Any()).Return(newEntry(t, "w1", 2, model.StatusWaiting), nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdateStatus(ctx, "resto-1", "w1", dto.UpdateWaitlistStatusRequest{Status: model.StatusExpired})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusExpired, res.Status)
	})
}

func TestWaitlistNotifyOnCancellation(t *testing.T) {
	ctx := context.Background()

	date, err := time.Parse(constant.DateOnly, "2026-06-01")
	assert.NoError(t, err)

	freedStart := 19 * constant.MinutesToHour
	freedDuration := 120

	t.Run("offers the freed slot to every party that fits", func(t *testing.T) {
		f := newWaitlistFixture(t)

		fits := tableModel.Table{ID: "t1", TableNumber: 1, Capacity: 4}
		entries := []model.WaitlistEntry{
			newEntry(t, "w1", 2, model.StatusWaiting),
			newEntry(t, "w2", 8, model.StatusWaiting),
			newEntry(t, "w3", 4, model.StatusWaiting),
		}

		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(), nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(entries, nil)

		f.avail.EXPECT().FindSuitableTable(ctx, "resto-1", date, 2, freedStart, freedDuration, "").Return(&fits, nil)
		f.avail.EXPECT().FindSuitableTable(ctx, "resto-1", date, 8, freedStart, freedDuration, "").Return(nil, nil)
		f.avail.EXPECT().FindSuitableTable(ctx, "resto-1", date, 4, freedStart, freedDuration, "").Return(&fits, nil)

		f.mail.EXPECT().SendWaitlistOffer(ctx, gomock.Any()).Return(nil).Times(2)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		err := f.svc.NotifyOnCancellation(ctx, "resto-1", date, freedStart, freedDuration)

		assert.NoError(t, err)
	})

	t.Run("per entry failures do not stop the sweep", func(t *testing.T) {
		f := newWaitlistFixture(t)

		fits := tableModel.Table{ID: "t1", TableNumber: 1, Capacity: 4}
		entries := []model.WaitlistEntry{
			newEntry(t, "w1", 2, model.StatusWaiting),
			newEntry(t, "w2", 4, model.StatusWaiting),
		}

		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(testRestaurant(), nil)
		f.repo.EXPECT().GetAll(ctx, gomock.Any(), gomock.Any()).Return(entries, nil)

		f.avail.EXPECT().
			FindSuitableTable(ctx, "resto-1", date, 2, freedStart, freedDuration, "").
			Return(nil, failure.InternalError(assert.AnError))
		f.avail.EXPECT().FindSuitableTable(ctx, "resto-1", date, 4, freedStart, freedDuration, "").Return(&fits, nil)

		f.mail.EXPECT().SendWaitlistOffer(ctx, gomock.Any()).Return(nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.NotifyOnCancellation(ctx, "resto-1", date, freedStart, freedDuration)

		assert.NoError(t, err)
	})

	t.Run("restaurant gone aborts the sweep", func(t *testing.T) {
		f := newWaitlistFixture(t)
		f.restaurants.EXPECT().Get(ctx, gomock.Any()).Return(restaurantModel.Restaurant{}, nil)

		err := f.svc.NotifyOnCancellation(ctx, "missing", date, freedStart, freedDuration)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
