package updateStatus

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/http-server/handlers/booking/updateStatus/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

func TestUpdateStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	booking := &models.Booking{
		ID:       "abc-123",
		UserID:   "guest@example.com",
		Name:     "Asha",
		RoomType: models.RoomSuite,
		Status:   models.StatusPending,
	}

	confirmedBooking := &models.Booking{
		ID:       "abc-123",
		UserID:   "guest@example.com",
		Name:     "Asha",
		RoomType: models.RoomSuite,
		Status:   models.StatusConfirmed,
	}

	testCases := []struct {
		name           string
		bookingID      string
		status         string
		mockSetup      func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Confirm sends email and drops cached availability",
			bookingID: "abc-123",
			status:    "confirmed",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "abc-123").Return(booking, nil)
				m.On("UpdateBookingStatus", "abc-123", "confirmed").Return(nil)
				i.On("InvalidateAvailability", mock.Anything).Return(nil)
				n.On("BookingConfirmed", booking).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking marked as confirmed"}`,
		},
		{
			name:      "Reject sends email",
			bookingID: "abc-123",
			status:    "rejected",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "abc-123").Return(booking, nil)
				m.On("UpdateBookingStatus", "abc-123", "rejected").Return(nil)
				n.On("BookingRejected", booking).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking marked as rejected"}`,
		},
		{
			name:      "Unconfirming drops cached availability",
			bookingID: "abc-123",
			status:    "rejected",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "abc-123").Return(confirmedBooking, nil)
				m.On("UpdateBookingStatus", "abc-123", "rejected").Return(nil)
				i.On("InvalidateAvailability", mock.Anything).Return(nil)
				n.On("BookingRejected", confirmedBooking).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking marked as rejected"}`,
		},
		{
			name:      "Email and cache failures are not fatal",
			bookingID: "abc-123",
			status:    "confirmed",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "abc-123").Return(booking, nil)
				m.On("UpdateBookingStatus", "abc-123", "confirmed").Return(nil)
				i.On("InvalidateAvailability", mock.Anything).Return(errors.New("redis down"))
				n.On("BookingConfirmed", mock.Anything).Return(errors.New("smtp down"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Booking marked as confirmed"}`,
		},
		{
			name:           "Invalid status",
			bookingID:      "abc-123",
			status:         "archived",
			mockSetup:      func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid status"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			status:    "confirmed",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "missing").Return(nil, errors.New("booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Update failure",
			bookingID: "abc-123",
			status:    "confirmed",
			mockSetup: func(m *mocks.StatusUpdater, n *mocks.Notifier, i *mocks.Invalidator) {
				m.On("GetBooking", "abc-123").Return(booking, nil)
				m.On("UpdateBookingStatus", "abc-123", "confirmed").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewStatusUpdater(t)
			mockNotifier := mocks.NewNotifier(t)
			mockInvalidator := mocks.NewInvalidator(t)
			tc.mockSetup(mockUpdater, mockNotifier, mockInvalidator)

			handler := New(logger, mockUpdater, mockNotifier, mockInvalidator)

			url := "/booking/" + tc.bookingID + "/status?status=" + tc.status
			req, err := http.NewRequest("PATCH", url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Patch("/booking/{id}/status", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
