package usecase

import (
	"context"
	"sort"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"

	"github.com/google/uuid"
)

// Fakes embed the repository interface so only the methods a test
// exercises need an implementation.

type fakeGarageRepo struct {
	repository.GarageRepository
	garages []*entity.Garage
}

func (f *fakeGarageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Garage, error) {
	for _, g := range f.garages {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGarageRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) (*entity.Garage, error) {
	for _, g := range f.garages {
		if g.OwnerID == ownerID {
			return g, nil
		}
	}
	return nil, nil
}

type fakeTimeSlotRepo struct {
	repository.TimeSlotRepository
	slots []*entity.TimeSlot
}

func (f *fakeTimeSlotRepo) FindByGarageAndDay(_ context.Context, garageID uuid.UUID, dayOfWeek int) ([]*entity.TimeSlot, error) {
	var out []*entity.TimeSlot
	for _, s := range f.slots {
		if s.GarageID == garageID && s.DayOfWeek == dayOfWeek {
			out = append(out, s)
		}
	}
	// Same ordering the SQL query guarantees: start time ascending,
	// predefined before custom on ties.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].Origin == entity.SlotOriginPredefined && out[j].Origin == entity.SlotOriginCustom
	})
	return out, nil
}

func (f *fakeTimeSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeTimeSlotRepo) SetAvailability(_ context.Context, id uuid.UUID, isAvailable bool) error {
	for _, s := range f.slots {
		if s.ID == id {
			s.IsAvailable = isAvailable
		}
	}
	return nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	bookings []*entity.Booking
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) AssignMechanic(_ context.Context, bookingID, mechanicID uuid.UUID) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.MechanicID = &mechanicID
		}
	}
	return nil
}

func (f *fakeBookingRepo) FindActiveTimes(_ context.Context, garageID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	for _, b := range f.bookings {
		if b.GarageID == garageID && sameDay(b.Date, date) && b.Status.Occupies() {
			times = append(times, b.SlotTime)
		}
	}
	return times, nil
}

func (f *fakeBookingRepo) SumCompleted(_ context.Context, garageID uuid.UUID, from, to *time.Time) (float64, int64, error) {
	var total float64
	var count int64
	for _, b := range f.bookings {
		if b.GarageID != garageID || b.Status != entity.BookingStatusCompleted {
			continue
		}
		if from != nil && b.Date.Before(*from) {
			continue
		}
		if to != nil && b.Date.After(*to) {
			continue
		}
		total += b.TotalAmount
		count++
	}
	return total, count, nil
}

func (f *fakeBookingRepo) FindCompleted(_ context.Context, garageID uuid.UUID, limit int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.GarageID == garageID && b.Status == entity.BookingStatusCompleted && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ExistsActive(_ context.Context, garageID uuid.UUID, date time.Time, slotTime string) (bool, error) {
	for _, b := range f.bookings {
		if b.GarageID == garageID && sameDay(b.Date, date) && b.SlotTime == slotTime && b.Status.Occupies() {
			return true, nil
		}
	}
	return false, nil
}

type fakeServiceRepo struct {
	repository.ServiceRepository
	services []*entity.Service
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

type fakeMechanicRepo struct {
	repository.MechanicRepository
	mechanics []*entity.Mechanic
}

func (f *fakeMechanicRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Mechanic, error) {
	for _, m := range f.mechanics {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

type fakeBookingServiceRepo struct {
	repository.BookingServiceRepository
	created []*entity.BookingService
	fail    error
}

func (f *fakeBookingServiceRepo) CreateBatch(_ context.Context, items []*entity.BookingService) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = append(f.created, items...)
	return nil
}

type fakeNotificationRepo struct {
	repository.NotificationRepository
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	f.created = append(f.created, notification)
	return nil
}

type fakeDocumentRepo struct {
	repository.GarageDocumentRepository
	docs []*entity.GarageDocument
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *entity.GarageDocument) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocumentRepo) FindByGarageID(_ context.Context, garageID uuid.UUID) ([]*entity.GarageDocument, error) {
	var out []*entity.GarageDocument
	for _, d := range f.docs {
		if d.GarageID == garageID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GarageDocument, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) Review(_ context.Context, id uuid.UUID, verified bool, rejectionReason *string) error {
	now := time.Now()
	for _, d := range f.docs {
		if d.ID == id {
			d.Verified = verified
			d.RejectionReason = rejectionReason
			d.ReviewedAt = &now
		}
	}
	return nil
}

type fakeBankRepo struct {
	repository.BankVerificationRepository
	record *entity.BankVerification
}

func (f *fakeBankRepo) FindByGarageID(_ context.Context, garageID uuid.UUID) (*entity.BankVerification, error) {
	if f.record != nil && f.record.GarageID == garageID {
		return f.record, nil
	}
	return nil, nil
}

func (f *fakeBankRepo) Upsert(_ context.Context, record *entity.BankVerification) error {
	f.record = record
	return nil
}

func (f *fakeBankRepo) UpdateStatus(_ context.Context, garageID uuid.UUID, status entity.BankStatus, rejectionReason *string) error {
	if f.record != nil && f.record.GarageID == garageID {
		f.record.Status = status
		f.record.RejectionReason = rejectionReason
	}
	return nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ExistsByBookingID(_ context.Context, bookingID uuid.UUID) (bool, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}
