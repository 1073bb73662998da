package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/config"
	"guestdesk/internal/http-server/handlers/booking/createBooking/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

func testHotel() *config.Hotel {
	return &config.Hotel{
		DeluxeRooms:   10,
		SuiteRooms:    20,
		StandardRooms: 30,
		DeluxeRate:    250000,
		SuiteRate:     400000,
		StandardRate:  150000,
		Currency:      "INR",
	}
}

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"user_id": "guest@example.com",
		"name": "Asha",
		"room_type": "Suite",
		"check_in": "2024-06-01",
		"check_out": "2024-06-03"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("ConfirmedOverlapCount", models.RoomSuite, "2024-06-01", "2024-06-03").
					Return(0, nil)
				m.On("CreateBooking", mock.MatchedBy(func(b *models.Booking) bool {
					return b.UserID == "guest@example.com" &&
						b.RoomType == models.RoomSuite &&
						b.Status == models.StatusPending &&
						b.PaymentStatus == models.PaymentInit &&
						b.AmountPaise == 800000 && // 2 nights at 400000
						b.Currency == "INR"
				})).Run(func(args mock.Arguments) {
					args.Get(0).(*models.Booking).ID = "abc-123"
				}).Return("abc-123", nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				require.NotNil(t, resp.Booking)
				assert.Equal(t, "abc-123", resp.Booking.ID)
				assert.Equal(t, models.StatusPending, resp.Booking.Status)
				assert.Equal(t, int64(800000), resp.Booking.AmountPaise)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user_id never reaches storage",
			requestBody:    `{"name": "Asha", "room_type": "Suite", "check_in": "2024-06-01", "check_out": "2024-06-03"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "UserID")
			},
		},
		{
			name:           "Invalid email format",
			requestBody:    `{"user_id": "not-an-email", "name": "Asha", "room_type": "Suite", "check_in": "2024-06-01", "check_out": "2024-06-03"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "UserID")
			},
		},
		{
			name:           "Missing check_in never reaches storage",
			requestBody:    `{"user_id": "guest@example.com", "name": "Asha", "room_type": "Suite", "check_out": "2024-06-03"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "CheckIn")
			},
		},
		{
			name:           "Unknown room type",
			requestBody:    `{"user_id": "guest@example.com", "name": "Asha", "room_type": "Penthouse", "check_in": "2024-06-01", "check_out": "2024-06-03"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room type"}`,
		},
		{
			name:           "Bad date format",
			requestBody:    `{"user_id": "guest@example.com", "name": "Asha", "room_type": "Suite", "check_in": "01/06/2024", "check_out": "2024-06-03"}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid check_in date format"}`,
		},
		{
			name:        "No capacity",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("ConfirmedOverlapCount", models.RoomSuite, "2024-06-01", "2024-06-03").
					Return(20, nil)
				m.On("ConfirmedOverlapCounts", "2024-06-01", "2024-06-03").
					Return(map[models.RoomType]int{
						models.RoomDeluxe: 3,
						models.RoomSuite:  20,
					}, nil)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				var resp ConflictResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Contains(t, resp.Error, "no available Suite rooms")
				assert.Equal(t, 7, resp.AvailableRooms.Deluxe)
				assert.Equal(t, 0, resp.AvailableRooms.Suite)
				assert.Equal(t, 30, resp.AvailableRooms.Standard)
			},
		},
		{
			name:        "Capacity check failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("ConfirmedOverlapCount", models.RoomSuite, "2024-06-01", "2024-06-03").
					Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
		{
			name:        "Insert failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("ConfirmedOverlapCount", models.RoomSuite, "2024-06-01", "2024-06-03").
					Return(0, nil)
				m.On("CreateBooking", mock.AnythingOfType("*models.Booking")).
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator, testHotel())

			req, err := http.NewRequest("POST", "/booking/", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestSingleNightMinimum(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewBookingCreator(t)

	// check_out equal to check_in still bills one night
	mockCreator.On("ConfirmedOverlapCount", models.RoomStandard, "2024-06-01", "2024-06-01").
		Return(0, nil)
	mockCreator.On("CreateBooking", mock.MatchedBy(func(b *models.Booking) bool {
		return b.AmountPaise == 150000
	})).Return("id-1", nil)

	handler := New(logger, mockCreator, testHotel())

	body := `{"user_id": "guest@example.com", "name": "Asha", "room_type": "Standard", "check_in": "2024-06-01", "check_out": "2024-06-01"}`
	req := httptest.NewRequest("POST", "/booking/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
