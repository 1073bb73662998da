package getAllBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/http-server/handlers/booking/getAllBookings/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewBookingsGetter(t)
		mockGetter.On("GetAllBookings").Return([]models.Booking{
			{ID: "abc-123", RoomType: models.RoomSuite, Status: models.StatusPending},
		}, nil)

		handler := New(logger, mockGetter)

		req := httptest.NewRequest("GET", "/booking/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp BookingsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "abc-123", resp.Bookings[0].ID)
	})

	t.Run("Storage failure", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewBookingsGetter(t)
		mockGetter.On("GetAllBookings").Return(nil, errors.New("database error"))

		handler := New(logger, mockGetter)

		req := httptest.NewRequest("GET", "/booking/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, rr.Body.String())
	})
}
