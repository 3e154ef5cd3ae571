package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ironhorse/models"
	"ironhorse/services/booking"

	"github.com/gin-gonic/gin"
)

// GetBookableDatesHandler lists the dates the shop can take appointments
// over the coming weeks.
func (hb *HandlerBundle) GetBookableDatesHandler(c *gin.Context) {
	daysAhead := 30
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		daysAhead = n
	}

	dates, err := hb.Bookings.BookableDates(daysAhead)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookable dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetAvailableSlotsHandler returns the slot board for a service on a date.
func (hb *HandlerBundle) GetAvailableSlotsHandler(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and date are required"})
		return
	}

	slots, err := hb.Bookings.AvailableSlots(serviceID, date)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		case errors.Is(err, booking.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateBookingHandler admits a new appointment request.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := hb.Bookings.CreateBooking(req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		case errors.Is(err, booking.ErrDateNotBookable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "that date cannot be booked"})
		case errors.Is(err, booking.ErrSlotNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{"error": "that start time is not offered on that date"})
		case errors.Is(err, booking.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "this time is no longer available, please pick another slot"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// CancelBookingHandler cancels an appointment, freeing its window.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Bookings.CancelBooking(id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListBookingsByDateHandler returns the owner's day sheet.
func (hb *HandlerBundle) ListBookingsByDateHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	bookings, err := hb.Bookings.ListByDate(date)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "bookings": bookings})
}

// UpdateBookingStatusHandler transitions an appointment's status.
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.Bookings.UpdateStatus(id, input.Status); err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}
