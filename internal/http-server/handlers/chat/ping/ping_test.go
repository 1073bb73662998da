package ping

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"guestdesk/internal/lib/logger/handlers/slogdiscard"
)

func TestPingHandler(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest("GET", "/chat/ping", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
}
