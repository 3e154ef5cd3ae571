package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "ironhorse/database/repository/booking"
	"ironhorse/models"
	"ironhorse/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings  []models.Booking
	slotTaken bool
	created   *models.Booking
	statuses  map[string]string
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListConfirmed(serviceID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ServiceID == serviceID && b.Date == date && b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateIfSlotFree(b *models.Booking) error {
	if f.slotTaken {
		return bookingRepo.ErrSlotTaken
	}
	for _, existing := range f.bookings {
		if existing.ServiceID != b.ServiceID || existing.Date != b.Date ||
			existing.Status != models.BookingStatusConfirmed {
			continue
		}
		overlaps, err := scheduling.Overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime)
		if err != nil {
			return err
		}
		if overlaps {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.created = b
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	if f.statuses == nil {
		f.statuses = map[string]string{}
	}
	f.statuses[id] = status
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.ServiceType
}

func (f *fakeServiceRepo) GetByID(id string) (*models.ServiceType, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) GetAll(activeOnly bool) ([]models.ServiceType, error) {
	return nil, nil
}

func (f *fakeServiceRepo) Create(s *models.ServiceType) error { return nil }
func (f *fakeServiceRepo) Update(s *models.ServiceType) error { return nil }
func (f *fakeServiceRepo) Delete(id string) error             { return nil }

type fakeSettingsRepo struct {
	hours models.OperatingHours
}

func (f *fakeSettingsRepo) GetOperatingHours() (models.OperatingHours, error) {
	return f.hours, nil
}

func (f *fakeSettingsRepo) SetOperatingHours(hours models.OperatingHours) error {
	f.hours = hours
	return nil
}

type fakeNotifier struct {
	confirmations []models.BookingNotice
	reminders     []models.BookingNotice
}

func (f *fakeNotifier) SendBookingConfirmation(n models.BookingNotice) {
	f.confirmations = append(f.confirmations, n)
}

func (f *fakeNotifier) ScheduleBookingReminder(n models.BookingNotice, fireAt time.Time) {
	f.reminders = append(f.reminders, n)
}

func newTestService(repo *fakeBookingRepo, notifier *fakeNotifier) *DefaultBookingService {
	weekday := &models.DayHours{Open: "09:00", Close: "17:00"}
	return &DefaultBookingService{
		Repo: repo,
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.ServiceType{
			"oil-change": {ID: "oil-change", Name: "Oil Change", DurationMinutes: 60, Active: true},
			"retired":    {ID: "retired", Name: "Retired", DurationMinutes: 30, Active: false},
		}},
		Settings: &fakeSettingsRepo{hours: models.OperatingHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
		}},
		Notification: notifier,
		Now: func() time.Time {
			// Monday morning before opening.
			return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		},
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ServiceID:     "oil-change",
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "555-0134",
		Date:          "2026-03-04",
		StartTime:     "10:00",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	b, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, "11:00", b.EndTime)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, b.ID, repo.created.ID)

	require.Len(t, notifier.confirmations, 1)
	assert.Equal(t, b.ID, notifier.confirmations[0].BookingID)
	assert.Len(t, notifier.reminders, 1)
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.ServiceID = "nope"
	_, err := svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateBookingInactiveService(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.ServiceID = "retired"
	_, err := svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateBookingPastDate(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.Date = "2026-02-27"
	_, err := svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestCreateBookingClosedDay(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.Date = "2026-03-08" // Sunday
	_, err := svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestCreateBookingUnalignedStart(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.StartTime = "10:15"
	_, err := svc.CreateBooking(req)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestCreateBookingSlotAlreadyBooked(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{{
		ID:        "existing",
		ServiceID: "oil-change",
		Date:      "2026-03-04",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    models.BookingStatusConfirmed,
	}}}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.CreateBooking(validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateBookingCancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{{
		ID:        "cancelled",
		ServiceID: "oil-change",
		Date:      "2026-03-04",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    models.BookingStatusCancelled,
	}}}
	svc := newTestService(repo, &fakeNotifier{})

	b, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)
	assert.Equal(t, "10:00", b.StartTime)
}

func TestCreateBookingLosesCommitRace(t *testing.T) {
	// The slot board says available, but another submission lands first.
	repo := &fakeBookingRepo{slotTaken: true}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.CreateBooking(validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, notifier.confirmations)
}

func TestAvailableSlotsMarksConflicts(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{{
		ID:        "b1",
		ServiceID: "oil-change",
		Date:      "2026-03-04",
		StartTime: "11:00",
		EndTime:   "12:00",
		Status:    models.BookingStatusConfirmed,
	}}}
	svc := newTestService(repo, &fakeNotifier{})

	slots, err := svc.AvailableSlots("oil-change", "2026-03-04")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.StartTime] = s.Available
	}
	assert.True(t, byStart["10:00"])
	assert.False(t, byStart["10:30"])
	assert.False(t, byStart["11:00"])
	assert.False(t, byStart["11:30"])
	assert.True(t, byStart["12:00"])
}

func TestAvailableSlotsPastDateEmpty(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	slots, err := svc.AvailableSlots("oil-change", "2026-02-27")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsMalformedDate(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	_, err := svc.AvailableSlots("oil-change", "03/04/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBookableDatesSkipsClosedDays(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	dates, err := svc.BookableDates(7)
	require.NoError(t, err)

	// Mon 2026-03-02 through Fri 2026-03-06 are open; Sat and Sun are not.
	assert.Equal(t, []string{
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06",
	}, dates)
}

func TestCancelBookingNotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	err := svc.CancelBooking("missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBookingTransitions(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{{
		ID:     "b1",
		Status: models.BookingStatusConfirmed,
	}}}
	svc := newTestService(repo, &fakeNotifier{})

	require.NoError(t, svc.CancelBooking("b1"))
	assert.Equal(t, models.BookingStatusCancelled, repo.statuses["b1"])
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{{ID: "b1"}}}
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.UpdateStatus("b1", "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, svc.UpdateStatus("b1", models.BookingStatusNoShow))
	assert.Equal(t, models.BookingStatusNoShow, repo.statuses["b1"])
}

func TestListByDateValidatesFormat(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeNotifier{})

	_, err := svc.ListByDate("tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestOnlyOneOfTwoIdenticalRequestsWins(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotifier{})

	first, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	_, err = svc.CreateBooking(validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSlotConflict))

	// The winner's booking is untouched.
	got, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}
