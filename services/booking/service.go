package booking

import (
	"errors"
	"fmt"
	"time"

	"ironhorse/config"
	bookingRepo "ironhorse/database/repository/booking"
	serviceRepo "ironhorse/database/repository/service"
	settingsRepo "ironhorse/database/repository/settings"
	"ironhorse/models"
	"ironhorse/services/notification"
	"ironhorse/services/scheduling"
	"ironhorse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// DefaultBookingService implements BookingService over the Mongo
// repositories and the scheduling core.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ServiceRepo  serviceRepo.ServiceRepository
	Settings     settingsRepo.SettingsRepository
	Notification notification.NotificationService

	// Now overrides the clock in tests. When nil, the current instant
	// in the store's timezone is used.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().In(config.StoreLocation())
}

// BookableDates lists selectable dates over the coming horizon.
func (s *DefaultBookingService) BookableDates(daysAhead int) ([]string, error) {
	hours, err := s.Settings.GetOperatingHours()
	if err != nil {
		return nil, fmt.Errorf("failed to load operating hours: %w", err)
	}

	now := s.now()
	dates := []string{}
	for i := 0; i < daysAhead; i++ {
		d := now.AddDate(0, 0, i).Format("2006-01-02")
		if scheduling.IsDateBookable(d, hours, now) {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// AvailableSlots computes the slot list for a service on a date. A
// date that is not bookable (past, or closed that weekday) yields an
// empty list rather than an error.
func (s *DefaultBookingService) AvailableSlots(serviceID, date string) ([]models.TimeSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	svc, err := s.activeService(serviceID)
	if err != nil {
		return nil, err
	}

	hours, err := s.Settings.GetOperatingHours()
	if err != nil {
		return nil, fmt.Errorf("failed to load operating hours: %w", err)
	}

	now := s.now()
	if !scheduling.IsDateBookable(date, hours, now) {
		return []models.TimeSlot{}, nil
	}

	confirmed, err := s.Repo.ListConfirmed(serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	return scheduling.GenerateSlots(date, svc.DurationMinutes, hours, confirmed, now)
}

// CreateBooking validates an appointment request and admits it with a
// commit-time conflict re-check. The slot list rendered to the
// customer is only a snapshot; admission runs against a fresh read.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	svc, err := s.activeService(req.ServiceID)
	if err != nil {
		return nil, err
	}

	hours, err := s.Settings.GetOperatingHours()
	if err != nil {
		return nil, fmt.Errorf("failed to load operating hours: %w", err)
	}

	now := s.now()
	if !scheduling.IsDateBookable(req.Date, hours, now) {
		return nil, ErrDateNotBookable
	}

	confirmed, err := s.Repo.ListConfirmed(req.ServiceID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	slots, err := scheduling.GenerateSlots(req.Date, svc.DurationMinutes, hours, confirmed, now)
	if err != nil {
		return nil, err
	}

	var chosen *models.TimeSlot
	for i := range slots {
		if slots[i].StartTime == req.StartTime {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrSlotNotOffered
	}
	if !chosen.Available {
		return nil, ErrSlotConflict
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		StartTime:     chosen.StartTime,
		EndTime:       chosen.EndTime,
		Timezone:      config.AppConfig.StoreTimezone,
		Status:        models.BookingStatusConfirmed,
		Notes:         req.Notes,
	}

	if err := s.Repo.CreateIfSlotFree(b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("serviceID", b.ServiceID),
		zap.String("date", b.Date),
		zap.String("start", b.StartTime),
	)

	s.notify(b, svc, now, chosen.Label)
	return b, nil
}

// notify enqueues the confirmation immediately and the reminder for
// the day before, when there is still a day to go.
func (s *DefaultBookingService) notify(b *models.Booking, svc *models.ServiceType, now time.Time, label string) {
	if s.Notification == nil {
		return
	}
	notice := models.BookingNotice{
		BookingID:     b.ID,
		ServiceName:   svc.Name,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date,
		StartTime:     b.StartTime,
		Label:         label,
	}
	s.Notification.SendBookingConfirmation(notice)

	if start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, now.Location()); err == nil {
		fireAt := start.Add(-reminderLead)
		if fireAt.After(now) {
			s.Notification.ScheduleBookingReminder(notice, fireAt)
		}
	}
}

// CancelBooking cancels an appointment, freeing its window.
func (s *DefaultBookingService) CancelBooking(id string) error {
	return s.transition(id, models.BookingStatusCancelled)
}

// UpdateStatus transitions a booking's status (owner operation).
func (s *DefaultBookingService) UpdateStatus(id, status string) error {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled,
		models.BookingStatusCompleted, models.BookingStatusNoShow:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.transition(id, status)
}

func (s *DefaultBookingService) transition(id, status string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if existing == nil {
		return ErrBookingNotFound
	}
	return s.Repo.UpdateStatus(id, status)
}

// ListByDate returns all bookings on a date (owner operation).
func (s *DefaultBookingService) ListByDate(date string) ([]models.Booking, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.Repo.ListByDate(date)
}

func (s *DefaultBookingService) activeService(id string) (*models.ServiceType, error) {
	svc, err := s.ServiceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil || !svc.Active {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}
