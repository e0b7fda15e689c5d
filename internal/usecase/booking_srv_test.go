package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    entity.BookingStatus
		to      entity.BookingStatus
		allowed bool
	}{
		{entity.BookingStatusPending, entity.BookingStatusConfirmed, true},
		{entity.BookingStatusPending, entity.BookingStatusCancelled, true},
		{entity.BookingStatusPending, entity.BookingStatusInProgress, false},
		{entity.BookingStatusPending, entity.BookingStatusCompleted, false},
		{entity.BookingStatusConfirmed, entity.BookingStatusInProgress, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusCancelled, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusCompleted, false},
		{entity.BookingStatusInProgress, entity.BookingStatusCompleted, true},
		{entity.BookingStatusInProgress, entity.BookingStatusCancelled, false},
		{entity.BookingStatusCompleted, entity.BookingStatusCancelled, false},
		{entity.BookingStatusCancelled, entity.BookingStatusConfirmed, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, canTransition(tc.from, tc.to))
		})
	}
}

type bookingFixture struct {
	svc      *bookingService
	garage   *entity.Garage
	service  *entity.Service
	slots    *fakeTimeSlotRepo
	bookings *fakeBookingRepo
	items    *fakeBookingServiceRepo
	notes    *fakeNotificationRepo
}

func newBookingFixture() *bookingFixture {
	garage := &entity.Garage{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OwnerID: uuid.New(),
		Name:    "Test Garage",
		IsOpen:  true,
	}
	service := &entity.Service{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		GarageID:        garage.ID,
		Name:            "Oil change",
		Price:           49.90,
		DurationMinutes: 30,
		IsActive:        true,
	}

	slots := &fakeTimeSlotRepo{slots: []*entity.TimeSlot{
		slot(garage.ID, 1, "09:00", "10:00", true, entity.SlotOriginPredefined),
	}}
	bookings := &fakeBookingRepo{}
	items := &fakeBookingServiceRepo{}
	notes := &fakeNotificationRepo{}

	repo := &repository.Repository{
		Garage:           &fakeGarageRepo{garages: []*entity.Garage{garage}},
		TimeSlot:         slots,
		Booking:          bookings,
		Service:          &fakeServiceRepo{services: []*entity.Service{service}},
		BookingService:   items,
		Notification:     notes,
		Mechanic:         &fakeMechanicRepo{},
		GarageDocument:   &fakeDocumentRepo{},
		BankVerification: &fakeBankRepo{},
	}

	svc := NewBookingService(repo, nil, nil, zap.NewNop()).(*bookingService)
	return &bookingFixture{
		svc:      svc,
		garage:   garage,
		service:  service,
		slots:    slots,
		bookings: bookings,
		items:    items,
		notes:    notes,
	}
}

// futureMonday returns the next Monday at least a week out, formatted
// for requests.
func futureMonday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func validBookingRequest(f *bookingFixture) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceIDs:    []string{f.service.ID.String()},
		Date:          futureMonday(),
		SlotTime:      "09:00",
		CustomerName:  "Jamie Ortega",
		CustomerPhone: "555-0134",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		f := newBookingFixture()

		resp, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		assert.Equal(t, "pending", resp.Status)
		assert.InDelta(t, 49.90, resp.TotalAmount, 0.001)
		assert.NotEmpty(t, resp.Code)
		require.Len(t, f.bookings.bookings, 1)
		require.Len(t, f.items.created, 1)
		assert.InDelta(t, 49.90, f.items.created[0].Price, 0.001)

		// The garage gets a notification.
		require.Len(t, f.notes.created, 1)
		assert.Equal(t, entity.NotifBookingCreated, f.notes.created[0].Type)
	})

	t.Run("double booking the same slot conflicts", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		_, err = f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		assert.ErrorContains(t, err, "already booked")
		assert.Len(t, f.bookings.bookings, 1)
	})

	t.Run("cancelled booking releases the slot", func(t *testing.T) {
		f := newBookingFixture()

		first, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)
		f.bookings.bookings[0].Status = entity.BookingStatusCancelled

		second, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("unknown slot time", func(t *testing.T) {
		f := newBookingFixture()
		req := validBookingRequest(f)
		req.SlotTime = "13:00"

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), req)
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("disabled slot cannot be booked", func(t *testing.T) {
		f := newBookingFixture()
		f.slots.slots[0].IsAvailable = false

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("inactive service rejected", func(t *testing.T) {
		f := newBookingFixture()
		f.service.IsActive = false

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		assert.ErrorContains(t, err, "inactive service")
	})

	t.Run("closed garage rejected", func(t *testing.T) {
		f := newBookingFixture()
		f.garage.IsOpen = false

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		assert.ErrorContains(t, err, "closed")
	})

	t.Run("past date rejected", func(t *testing.T) {
		f := newBookingFixture()
		req := validBookingRequest(f)
		req.Date = "2020-01-06"

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), req)
		assert.ErrorContains(t, err, "past date")
	})

	t.Run("failed service batch rolls the booking back", func(t *testing.T) {
		f := newBookingFixture()
		f.items.fail = errors.New("insert failed")

		_, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		assert.Error(t, err)
		assert.Empty(t, f.bookings.bookings)
	})

	t.Run("multiple services sum their prices", func(t *testing.T) {
		f := newBookingFixture()
		second := &entity.Service{
			Base:            entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			GarageID:        f.garage.ID,
			Name:            "Tire rotation",
			Price:           25.10,
			DurationMinutes: 20,
			IsActive:        true,
		}
		f.svc.repo.Service.(*fakeServiceRepo).services = append(
			f.svc.repo.Service.(*fakeServiceRepo).services, second)

		req := validBookingRequest(f)
		req.ServiceIDs = append(req.ServiceIDs, second.ID.String())

		resp, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), req)
		require.NoError(t, err)
		assert.InDelta(t, 75.00, resp.TotalAmount, 0.001)
		assert.Len(t, f.items.created, 2)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm then complete", func(t *testing.T) {
		f := newBookingFixture()
		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		ownerID := f.garage.OwnerID.String()
		for _, status := range []string{"confirmed", "in_progress", "completed"} {
			resp, err := f.svc.UpdateStatus(ctx, ownerID, created.ID.String(), &request.UpdateBookingStatusRequest{Status: status})
			require.NoError(t, err)
			assert.Equal(t, status, resp.Status)
		}
	})

	t.Run("skipping confirmation is rejected", func(t *testing.T) {
		f := newBookingFixture()
		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		_, err = f.svc.UpdateStatus(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.UpdateBookingStatusRequest{Status: "completed"})
		assert.ErrorContains(t, err, "cannot change booking status")
	})

	t.Run("terminal states reject changes", func(t *testing.T) {
		f := newBookingFixture()
		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)
		f.bookings.bookings[0].Status = entity.BookingStatusCompleted

		_, err = f.svc.UpdateStatus(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.UpdateBookingStatusRequest{Status: "cancelled"})
		assert.ErrorContains(t, err, "cannot change booking status")
	})
}

func TestGetEarnings(t *testing.T) {
	ctx := context.Background()

	completed := func(garageID uuid.UUID, date time.Time, amount float64) *entity.Booking {
		return &entity.Booking{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: date, UpdatedAt: date},
			Code:        "GRG-20250601-090000-0001",
			GarageID:    garageID,
			Date:        date,
			SlotTime:    "09:00",
			TotalAmount: amount,
			Status:      entity.BookingStatusCompleted,
		}
	}

	t.Run("sums completed bookings only", func(t *testing.T) {
		f := newBookingFixture()
		now := time.Now()
		f.bookings.bookings = []*entity.Booking{
			completed(f.garage.ID, now, 100),
			completed(f.garage.ID, now.AddDate(0, -2, 0), 50),
			{
				Base: entity.Base{ID: uuid.New()}, GarageID: f.garage.ID,
				Date: now, SlotTime: "10:00", TotalAmount: 999,
				Status: entity.BookingStatusPending,
			},
		}

		resp, err := f.svc.GetEarnings(ctx, f.garage.OwnerID.String(), "", "")
		require.NoError(t, err)
		assert.InDelta(t, 150, resp.TotalEarnings, 0.001)
		assert.Equal(t, int64(2), resp.CompletedBookings)
		assert.InDelta(t, 100, resp.EarningsToday, 0.001)
		assert.Len(t, resp.Recent, 2)
	})

	t.Run("payouts stay off below the top tier", func(t *testing.T) {
		f := newBookingFixture()

		resp, err := f.svc.GetEarnings(ctx, f.garage.OwnerID.String(), "", "")
		require.NoError(t, err)
		assert.False(t, resp.PayoutsActive)
	})

	t.Run("payouts activate with full verification", func(t *testing.T) {
		f := newBookingFixture()
		docs := f.svc.repo.GarageDocument.(*fakeDocumentRepo)
		for _, docType := range entity.DocumentTypes {
			docs.docs = append(docs.docs, &entity.GarageDocument{
				Base:         entity.Base{ID: uuid.New()},
				GarageID:     f.garage.ID,
				DocumentType: docType,
				Verified:     true,
			})
		}
		f.svc.repo.BankVerification.(*fakeBankRepo).record = &entity.BankVerification{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: f.garage.ID,
			Status:   entity.BankStatusVerified,
		}

		resp, err := f.svc.GetEarnings(ctx, f.garage.OwnerID.String(), "", "")
		require.NoError(t, err)
		assert.True(t, resp.PayoutsActive)
	})
}

func TestAssignMechanic(t *testing.T) {
	ctx := context.Background()

	mechanic := func(garageID uuid.UUID, active bool) *entity.Mechanic {
		return &entity.Mechanic{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			GarageID: garageID,
			Name:     "Sam Patel",
			IsActive: active,
		}
	}

	t.Run("assigns an active mechanic", func(t *testing.T) {
		f := newBookingFixture()
		m := mechanic(f.garage.ID, true)
		f.svc.repo.Mechanic.(*fakeMechanicRepo).mechanics = []*entity.Mechanic{m}

		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		resp, err := f.svc.AssignMechanic(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.AssignMechanicRequest{MechanicID: m.ID.String()})
		require.NoError(t, err)
		require.NotNil(t, resp.MechanicID)
		assert.Equal(t, m.ID, *resp.MechanicID)
	})

	t.Run("inactive mechanic rejected", func(t *testing.T) {
		f := newBookingFixture()
		m := mechanic(f.garage.ID, false)
		f.svc.repo.Mechanic.(*fakeMechanicRepo).mechanics = []*entity.Mechanic{m}

		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		_, err = f.svc.AssignMechanic(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.AssignMechanicRequest{MechanicID: m.ID.String()})
		assert.ErrorContains(t, err, "inactive mechanic")
	})

	t.Run("mechanic from another garage reads as not found", func(t *testing.T) {
		f := newBookingFixture()
		m := mechanic(uuid.New(), true)
		f.svc.repo.Mechanic.(*fakeMechanicRepo).mechanics = []*entity.Mechanic{m}

		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)

		_, err = f.svc.AssignMechanic(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.AssignMechanicRequest{MechanicID: m.ID.String()})
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("cancelled booking cannot take a mechanic", func(t *testing.T) {
		f := newBookingFixture()
		m := mechanic(f.garage.ID, true)
		f.svc.repo.Mechanic.(*fakeMechanicRepo).mechanics = []*entity.Mechanic{m}

		created, err := f.svc.CreateBooking(ctx, f.garage.ID.String(), validBookingRequest(f))
		require.NoError(t, err)
		f.bookings.bookings[0].Status = entity.BookingStatusCancelled

		_, err = f.svc.AssignMechanic(ctx, f.garage.OwnerID.String(), created.ID.String(),
			&request.AssignMechanicRequest{MechanicID: m.ID.String()})
		assert.ErrorContains(t, err, "cannot assign mechanic")
	})
}
