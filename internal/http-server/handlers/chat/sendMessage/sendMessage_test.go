package sendMessage

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestdesk/internal/http-server/handlers/chat/sendMessage/mocks"
	"guestdesk/internal/lib/logger/handlers/slogdiscard"
)

func TestSendMessageHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.Replier)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"user_id": "guest@example.com", "message": "wifi"}`,
			mockSetup: func(mock *mocks.Replier) {
				mock.On("Reply", "guest@example.com", "wifi").Return("Complimentary wifi is available.", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","response":"Complimentary wifi is available."}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(mock *mocks.Replier) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user_id",
			requestBody:    `{"message": "wifi"}`,
			mockSetup:      func(mock *mocks.Replier) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "UserID")
			},
		},
		{
			name:           "Missing message",
			requestBody:    `{"user_id": "guest@example.com"}`,
			mockSetup:      func(mock *mocks.Replier) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Message")
			},
		},
		{
			name:        "Replier failure",
			requestBody: `{"user_id": "guest@example.com", "message": "wifi"}`,
			mockSetup: func(mock *mocks.Replier) {
				mock.On("Reply", "guest@example.com", "wifi").Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to process message"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockReplier := mocks.NewReplier(t)
			tc.mockSetup(mockReplier)

			handler := New(logger, mockReplier)

			req, err := http.NewRequest("POST", "/chat/", bytes.NewBufferString(tc.requestBody))
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
