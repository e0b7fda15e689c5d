package usecase

import (
	"context"
	"testing"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func slot(garageID uuid.UUID, day int, start, end string, available bool, origin entity.SlotOrigin) *entity.TimeSlot {
	return &entity.TimeSlot{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		GarageID:     garageID,
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		IsAvailable:  available,
		Origin:       origin,
	}
}

func TestFilterBookable(t *testing.T) {
	garageID := uuid.New()

	t.Run("unavailable slots are skipped", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "10:00", "11:00", false, entity.SlotOriginPredefined),
		}

		out := filterBookable(slots, nil, false)
		require.Len(t, out, 1)
		assert.Equal(t, "09:00", out[0].StartTime)
	})

	t.Run("occupied times are removed", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "10:00", "11:00", true, entity.SlotOriginPredefined),
		}

		out := filterBookable(slots, []string{"09:00"}, false)
		require.Len(t, out, 1)
		assert.Equal(t, "10:00", out[0].StartTime)
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		out := filterBookable(nil, []string{"09:00"}, false)
		assert.Empty(t, out)
	})

	t.Run("duplicates survive without dedupe", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginCustom),
		}

		out := filterBookable(slots, nil, false)
		assert.Len(t, out, 2)
	})

	t.Run("dedupe keeps the first occurrence", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginCustom),
		}

		out := filterBookable(slots, nil, true)
		require.Len(t, out, 1)
		assert.Equal(t, entity.SlotOriginPredefined, out[0].Origin)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "10:00", "11:00", true, entity.SlotOriginPredefined),
		}
		occupied := []string{"10:00"}

		once := filterBookable(slots, occupied, false)
		twice := filterBookable(once, occupied, false)
		assert.Equal(t, once, twice)
	})

	t.Run("more occupied times never grow the result", func(t *testing.T) {
		slots := []*entity.TimeSlot{
			slot(garageID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "10:00", "11:00", true, entity.SlotOriginPredefined),
			slot(garageID, 1, "11:00", "12:00", true, entity.SlotOriginPredefined),
		}

		occupied := []string{}
		prev := len(filterBookable(slots, occupied, false))
		for _, taken := range []string{"09:00", "10:00", "11:00"} {
			occupied = append(occupied, taken)
			current := len(filterBookable(slots, occupied, false))
			assert.LessOrEqual(t, current, prev)
			prev = current
		}
		assert.Zero(t, prev)
	})
}

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid window", "09:00", "10:00", false},
		{"start equals end", "09:00", "09:00", true},
		{"start after end", "10:00", "09:00", true},
		{"bad start format", "9am", "10:00", true},
		{"hour out of range", "25:00", "26:00", true},
		{"minute out of range", "09:61", "10:00", true},
		{"midnight window", "00:00", "23:59", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindow(tc.start, tc.end)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newSlotFixture(dedupe bool) (*slotService, *fakeGarageRepo, *fakeTimeSlotRepo, *fakeBookingRepo, *entity.Garage) {
	ownerID := uuid.New()
	garage := &entity.Garage{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OwnerID: ownerID,
		Name:    "Test Garage",
		IsOpen:  true,
	}

	garages := &fakeGarageRepo{garages: []*entity.Garage{garage}}
	slots := &fakeTimeSlotRepo{}
	bookings := &fakeBookingRepo{}

	repo := &repository.Repository{
		Garage:   garages,
		TimeSlot: slots,
		Booking:  bookings,
	}
	config := &utils.Config{Booking: utils.BookingConfig{DedupeSlots: dedupe}}

	svc := NewSlotService(repo, config, nil, nil, zap.NewNop()).(*slotService)
	return svc, garages, slots, bookings, garage
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	// 2025-06-02 is a Monday.
	monday := "2025-06-02"
	mondayDate, _ := time.Parse("2006-01-02", monday)

	t.Run("open slot is bookable", func(t *testing.T) {
		svc, _, slots, _, garage := newSlotFixture(false)
		slots.slots = []*entity.TimeSlot{slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined)}

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.DayOfWeek)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	})

	t.Run("confirmed booking blocks the slot", func(t *testing.T) {
		svc, _, slots, bookings, garage := newSlotFixture(false)
		slots.slots = []*entity.TimeSlot{slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined)}
		bookings.bookings = []*entity.Booking{{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: garage.ID,
			Date:     mondayDate,
			SlotTime: "09:00",
			Status:   entity.BookingStatusConfirmed,
		}}

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		svc, _, slots, bookings, garage := newSlotFixture(false)
		slots.slots = []*entity.TimeSlot{slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined)}
		bookings.bookings = []*entity.Booking{{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: garage.ID,
			Date:     mondayDate,
			SlotTime: "09:00",
			Status:   entity.BookingStatusCancelled,
		}}

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
	})

	t.Run("other weekdays are not included", func(t *testing.T) {
		svc, _, slots, _, garage := newSlotFixture(false)
		slots.slots = []*entity.TimeSlot{
			slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garage.ID, 2, "09:00", "10:00", true, entity.SlotOriginPredefined),
		}

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 1)
	})

	t.Run("empty catalog resolves to no slots", func(t *testing.T) {
		svc, _, _, _, garage := newSlotFixture(false)

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("unknown garage is an error", func(t *testing.T) {
		svc, _, _, _, _ := newSlotFixture(false)

		_, err := svc.GetAvailability(ctx, uuid.New().String(), monday)
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("bad date is an error", func(t *testing.T) {
		svc, _, _, _, garage := newSlotFixture(false)

		_, err := svc.GetAvailability(ctx, garage.ID.String(), "02-06-2025")
		assert.ErrorContains(t, err, "invalid date")
	})

	t.Run("dedupe collapses duplicate start times", func(t *testing.T) {
		svc, _, slots, _, garage := newSlotFixture(true)
		slots.slots = []*entity.TimeSlot{
			slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
			slot(garage.ID, 1, "09:00", "10:30", true, entity.SlotOriginCustom),
		}

		resp, err := svc.GetAvailability(ctx, garage.ID.String(), monday)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, string(entity.SlotOriginPredefined), resp.Slots[0].Origin)
	})
}

func TestDeleteCustomSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("predefined slots cannot be deleted", func(t *testing.T) {
		svc, garages, slots, _, garage := newSlotFixture(false)
		predefined := slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined)
		slots.slots = []*entity.TimeSlot{predefined}

		err := svc.DeleteCustomSlot(ctx, garages.garages[0].OwnerID.String(), predefined.ID.String())
		assert.ErrorContains(t, err, "cannot delete predefined slot")
	})

	t.Run("foreign slot reads as not found", func(t *testing.T) {
		svc, garages, slots, _, _ := newSlotFixture(false)
		foreign := slot(uuid.New(), 1, "09:00", "10:00", true, entity.SlotOriginCustom)
		slots.slots = []*entity.TimeSlot{foreign}

		err := svc.DeleteCustomSlot(ctx, garages.garages[0].OwnerID.String(), foreign.ID.String())
		assert.ErrorContains(t, err, "not found")
	})
}
