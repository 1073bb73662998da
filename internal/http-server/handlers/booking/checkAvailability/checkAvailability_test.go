package checkAvailability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guestdesk/internal/http-server/handlers/booking/checkAvailability/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

func TestCheckAvailabilityHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.AvailabilityChecker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/booking/availability/?check_in=2024-06-01&check_out=2024-06-03",
			mockSetup: func(m *mocks.AvailabilityChecker) {
				m.On("Availability", mock.Anything, "2024-06-01", "2024-06-03").
					Return(models.Availability{Deluxe: 8, Suite: 20, Standard: 29}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"Deluxe":8,"Suite":20,"Standard":29}`,
		},
		{
			name:           "Missing check_in",
			url:            "/booking/availability/?check_out=2024-06-03",
			mockSetup:      func(m *mocks.AvailabilityChecker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"check_in and check_out are required"}`,
		},
		{
			name:           "Missing check_out",
			url:            "/booking/availability/?check_in=2024-06-01",
			mockSetup:      func(m *mocks.AvailabilityChecker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"check_in and check_out are required"}`,
		},
		{
			name:           "Bad date format",
			url:            "/booking/availability/?check_in=June+1&check_out=2024-06-03",
			mockSetup:      func(m *mocks.AvailabilityChecker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid check_in date format"}`,
		},
		{
			name: "Storage failure",
			url:  "/booking/availability/?check_in=2024-06-01&check_out=2024-06-03",
			mockSetup: func(m *mocks.AvailabilityChecker) {
				m.On("Availability", mock.Anything, "2024-06-01", "2024-06-03").
					Return(models.Availability{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check availability"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewAvailabilityChecker(t)
			tc.mockSetup(mockChecker)

			handler := New(logger, mockChecker)

			req := httptest.NewRequest("GET", tc.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
