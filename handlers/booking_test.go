package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ironhorse/models"
	"ironhorse/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	createErr error
	statusErr error
	cancelErr error
	slots     []models.TimeSlot
	slotsErr  error
}

func (f *fakeBookingService) BookableDates(daysAhead int) ([]string, error) {
	return []string{"2026-03-02"}, nil
}

func (f *fakeBookingService) AvailableSlots(serviceID, date string) ([]models.TimeSlot, error) {
	return f.slots, f.slotsErr
}

func (f *fakeBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Booking{ID: "b1", StartTime: req.StartTime, Status: models.BookingStatusConfirmed}, nil
}

func (f *fakeBookingService) CancelBooking(id string) error { return f.cancelErr }

func (f *fakeBookingService) UpdateStatus(id, status string) error { return f.statusErr }

func (f *fakeBookingService) ListByDate(date string) ([]models.Booking, error) {
	return nil, nil
}

func newBookingRouter(svc *fakeBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &HandlerBundle{Bookings: svc}
	r := gin.New()
	r.GET("/api/bookings/dates", hb.GetBookableDatesHandler)
	r.GET("/api/bookings/slots", hb.GetAvailableSlotsHandler)
	r.POST("/api/bookings", hb.CreateBookingHandler)
	r.DELETE("/api/bookings/:id", hb.CancelBookingHandler)
	return r
}

const validBookingBody = `{
	"serviceId": "oil-change",
	"customerName": "Dana Reyes",
	"customerEmail": "dana@example.com",
	"customerPhone": "555-0134",
	"date": "2026-03-04",
	"startTime": "10:00"
}`

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := postJSON(r, "/api/bookings", validBookingBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"b1"`)
}

func TestCreateBookingHandlerMissingFields(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := postJSON(r, "/api/bookings", `{"serviceId": "oil-change"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerBadEmail(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	body := strings.Replace(validBookingBody, "dana@example.com", "not-an-email", 1)
	w := postJSON(r, "/api/bookings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown service", booking.ErrServiceNotFound, http.StatusNotFound},
		{"closed or past date", booking.ErrDateNotBookable, http.StatusBadRequest},
		{"unaligned start", booking.ErrSlotNotOffered, http.StatusBadRequest},
		{"lost the race", booking.ErrSlotConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBookingRouter(&fakeBookingService{createErr: tt.err})
			w := postJSON(r, "/api/bookings", validBookingBody)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCreateBookingHandlerConflictMessage(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{createErr: booking.ErrSlotConflict})

	w := postJSON(r, "/api/bookings", validBookingBody)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestGetAvailableSlotsHandlerRequiresParams(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2026-03-04", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableSlotsHandlerOK(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{slots: []models.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00", Label: "10:00 AM to 11:00 AM", Available: true},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?serviceId=oil-change&date=2026-03-04", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10:00 AM to 11:00 AM")
}

func TestGetAvailableSlotsHandlerInvalidDate(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{slotsErr: booking.ErrInvalidDate})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?serviceId=oil-change&date=bad", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBookingHandlerNotFound(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{cancelErr: booking.ErrBookingNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookableDatesHandlerRejectsBadHorizon(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/dates?days=900", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

var _ booking.BookingService = (*fakeBookingService)(nil)
