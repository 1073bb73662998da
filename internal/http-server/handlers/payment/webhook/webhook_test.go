package webhook

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/http-server/handlers/payment/webhook/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
)

func TestWebhookHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	capturedBody := `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1"}}}}`

	testCases := []struct {
		name           string
		requestBody    string
		signature      string
		mockSetup      func(v *mocks.WebhookVerifier, s *mocks.EventRecorder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: capturedBody,
			signature:   "good-sig",
			mockSetup: func(v *mocks.WebhookVerifier, s *mocks.EventRecorder) {
				v.On("VerifyWebhookSignature", capturedBody, "good-sig").Return(true)
				s.On("RecordWebhookEvent", "payment.captured", capturedBody).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Bad signature",
			requestBody: capturedBody,
			signature:   "tampered",
			mockSetup: func(v *mocks.WebhookVerifier, s *mocks.EventRecorder) {
				v.On("VerifyWebhookSignature", capturedBody, "tampered").Return(false)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"bad signature"}`,
		},
		{
			name:        "Missing signature header",
			requestBody: capturedBody,
			signature:   "",
			mockSetup: func(v *mocks.WebhookVerifier, s *mocks.EventRecorder) {
				v.On("VerifyWebhookSignature", capturedBody, "").Return(false)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"bad signature"}`,
		},
		{
			name:        "Signed but malformed payload",
			requestBody: `not json`,
			signature:   "good-sig",
			mockSetup: func(v *mocks.WebhookVerifier, s *mocks.EventRecorder) {
				v.On("VerifyWebhookSignature", `not json`, "good-sig").Return(true)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage failure",
			requestBody: capturedBody,
			signature:   "good-sig",
			mockSetup: func(v *mocks.WebhookVerifier, s *mocks.EventRecorder) {
				v.On("VerifyWebhookSignature", capturedBody, "good-sig").Return(true)
				s.On("RecordWebhookEvent", "payment.captured", capturedBody).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to record event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockVerifier := mocks.NewWebhookVerifier(t)
			mockRecorder := mocks.NewEventRecorder(t)
			tc.mockSetup(mockVerifier, mockRecorder)

			handler := New(logger, mockVerifier, mockRecorder)

			req, err := http.NewRequest("POST", "/booking/webhook/razorpay", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if tc.signature != "" {
				req.Header.Set("X-Razorpay-Signature", tc.signature)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
