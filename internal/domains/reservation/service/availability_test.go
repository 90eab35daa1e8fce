package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/service"
	tableModel "tablebook/internal/domains/table/model"
	"tablebook/shared/constant"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.ClockFormat, value)
	assert.NoError(t, err)

	return parsed
}

func newTable(id string, number, capacity int) tableModel.Table {
	return tableModel.Table{
		ID:           id,
		RestaurantID: "resto-1",
		TableNumber:  number,
		Capacity:     capacity,
	}
}

func newReservation(t *testing.T, id, tableID, start, end, status string) model.Reservation {
	t.Helper()

	return model.Reservation{
		ID:           id,
		RestaurantID: "resto-1",
		TableID:      tableID,
		StartTime:    clock(t, start),
		EndTime:      clock(t, end),
		Status:       status,
	}
}

func TestBuildAvailableSlots(t *testing.T) {
	opening := 10 * constant.MinutesToHour
	closing := 22 * constant.MinutesToHour

	t.Run("open day with a single table yields every increment", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4)}

		slots := service.BuildAvailableSlots(opening, closing, tables, nil, 4, 120, 30)

		assert.Len(t, slots, 21)
		assert.Equal(t, "10:00", slots[0].StartTime)
		assert.Equal(t, "12:00", slots[0].EndTime)
		assert.Equal(t, "20:00", slots[len(slots)-1].StartTime)
		assert.Equal(t, "22:00", slots[len(slots)-1].EndTime)

		for _, slot := range slots {
			assert.Equal(t, 1, slot.TableNumber)
			assert.Equal(t, 4, slot.Capacity)
		}
	})

	t.Run("slot excluded while any suitable table is busy", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4), newTable("t2", 2, 6)}
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusConfirmed),
		}

		slots := service.BuildAvailableSlots(opening, closing, tables, reservations, 2, 60, 30)

		starts := map[string]bool{}
		for _, slot := range slots {
			starts[slot.StartTime] = true
		}

		// t2 is free at 19:00 but t1 is not, so the venue is not fully open.
		assert.False(t, starts["18:30"])
		assert.False(t, starts["19:00"])
		assert.False(t, starts["20:30"])
		assert.True(t, starts["18:00"])
		assert.True(t, starts["21:00"])
	})

	t.Run("cancelled reservations do not block", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4)}
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusCancelled),
		}

		slots := service.BuildAvailableSlots(opening, closing, tables, reservations, 4, 120, 30)

		assert.Len(t, slots, 21)
	})

	t.Run("reports the smallest suitable table", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t2", 2, 6), newTable("t1", 1, 2)}

		slots := service.BuildAvailableSlots(opening, closing, tables, nil, 2, 60, 30)

		assert.NotEmpty(t, slots)
		assert.Equal(t, 1, slots[0].TableNumber)
		assert.Equal(t, 2, slots[0].Capacity)
	})

	t.Run("party larger than every table yields nothing", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4)}

		slots := service.BuildAvailableSlots(opening, closing, tables, nil, 8, 60, 30)

		assert.Empty(t, slots)
	})

	t.Run("malformed hours degrade to empty", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4)}

		slots := service.BuildAvailableSlots(closing, opening, tables, nil, 2, 60, 30)

		assert.Empty(t, slots)
	})

	t.Run("duration longer than the day yields nothing", func(t *testing.T) {
		tables := []tableModel.Table{newTable("t1", 1, 4)}

		slots := service.BuildAvailableSlots(opening, opening+60, tables, nil, 2, 120, 30)

		assert.Empty(t, slots)
	})
}

func TestPickSuitableTable(t *testing.T) {
	closing := 22 * constant.MinutesToHour
	tables := []tableModel.Table{newTable("t1", 1, 4), newTable("t2", 2, 6)}

	t.Run("falls through to the next free table", func(t *testing.T) {
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusConfirmed),
		}

		table := service.PickSuitableTable(closing, tables, reservations, 2, 20*constant.MinutesToHour, 120, "")

		assert.NotNil(t, table)
		assert.Equal(t, "t2", table.ID)
	})

	t.Run("end past closing yields nil", func(t *testing.T) {
		table := service.PickSuitableTable(closing, tables, nil, 2, 21*constant.MinutesToHour, 120, "")

		assert.Nil(t, table)
	})

	t.Run("no table fits the party", func(t *testing.T) {
		table := service.PickSuitableTable(closing, tables, nil, 10, 18*constant.MinutesToHour, 60, "")

		assert.Nil(t, table)
	})

	t.Run("smallest free table wins", func(t *testing.T) {
		table := service.PickSuitableTable(closing, tables, nil, 2, 18*constant.MinutesToHour, 60, "")

		assert.NotNil(t, table)
		assert.Equal(t, "t1", table.ID)
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "18:00", "19:00", model.StatusConfirmed),
		}

		table := service.PickSuitableTable(closing, tables, reservations, 2, 19*constant.MinutesToHour, 60, "")

		assert.NotNil(t, table)
		assert.Equal(t, "t1", table.ID)
	})

	t.Run("excluded reservation frees its own slot", func(t *testing.T) {
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusConfirmed),
		}

		table := service.PickSuitableTable(closing, tables, reservations, 2, 19*constant.MinutesToHour, 120, "r1")

		assert.NotNil(t, table)
		assert.Equal(t, "t1", table.ID)
	})

	t.Run("fully booked venue yields nil", func(t *testing.T) {
		reservations := []model.Reservation{
			newReservation(t, "r1", "t1", "19:00", "21:00", model.StatusConfirmed),
			newReservation(t, "r2", "t2", "19:00", "21:00", model.StatusConfirmed),
		}

		table := service.PickSuitableTable(closing, tables, reservations, 2, 20*constant.MinutesToHour, 60, "")

		assert.Nil(t, table)
	})
}
