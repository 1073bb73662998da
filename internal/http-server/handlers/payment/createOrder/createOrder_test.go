package createOrder

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/http-server/handlers/payment/createOrder/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
	"guestdesk/internal/models"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            "abc-123",
		UserID:        "guest@example.com",
		RoomType:      models.RoomSuite,
		AmountPaise:   400000,
		Currency:      "INR",
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentInit,
	}
}

func TestCreateOrderHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	order := &models.PaymentOrder{
		ID:       "order_1",
		Amount:   400000,
		Currency: "INR",
		Status:   "created",
	}

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(p *mocks.OrderCreator, s *mocks.OrderStore)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				s.On("GetBooking", "abc-123").Return(pendingBooking(), nil)
				p.On("CreateOrder", int64(400000), "INR", "bk_abc-123").Return(order, nil)
				s.On("MarkOrderCreated", "abc-123", order, mock.AnythingOfType("string")).Return(nil)
				p.On("KeyID").Return("rzp_test_x")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","key_id":"rzp_test_x","order":{"id":"order_1","amount":400000,"currency":"INR","status":"created"}}`,
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				s.On("GetBooking", "missing").Return(nil, errors.New("booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Payment already initiated",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				b := pendingBooking()
				b.PaymentStatus = models.PaymentCreated
				s.On("GetBooking", "abc-123").Return(b, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"payment already initiated"}`,
		},
		{
			name:      "Failed payment may retry",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				b := pendingBooking()
				b.PaymentStatus = models.PaymentFailed
				s.On("GetBooking", "abc-123").Return(b, nil)
				p.On("CreateOrder", int64(400000), "INR", "bk_abc-123").Return(order, nil)
				s.On("MarkOrderCreated", "abc-123", order, mock.AnythingOfType("string")).Return(nil)
				p.On("KeyID").Return("rzp_test_x")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","key_id":"rzp_test_x","order":{"id":"order_1","amount":400000,"currency":"INR","status":"created"}}`,
		},
		{
			name:      "Zero amount",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				b := pendingBooking()
				b.AmountPaise = 0
				s.On("GetBooking", "abc-123").Return(b, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"booking amount is zero or invalid"}`,
		},
		{
			name:      "Provider failure",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				s.On("GetBooking", "abc-123").Return(pendingBooking(), nil)
				p.On("CreateOrder", int64(400000), "INR", "bk_abc-123").
					Return(nil, errors.New("provider unavailable"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to create order"}`,
		},
		{
			name:      "Persist failure",
			bookingID: "abc-123",
			mockSetup: func(p *mocks.OrderCreator, s *mocks.OrderStore) {
				s.On("GetBooking", "abc-123").Return(pendingBooking(), nil)
				p.On("CreateOrder", int64(400000), "INR", "bk_abc-123").Return(order, nil)
				s.On("MarkOrderCreated", "abc-123", order, mock.AnythingOfType("string")).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create order"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewOrderCreator(t)
			mockStore := mocks.NewOrderStore(t)
			tc.mockSetup(mockProvider, mockStore)

			handler := New(logger, mockProvider, mockStore)

			router := chi.NewRouter()
			router.Post("/booking/{id}/create-order", handler)

			req, err := http.NewRequest("POST", "/booking/"+tc.bookingID+"/create-order", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
