package ping

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
)

// New returns the readiness probe the web client polls before showing any UI.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.ping.New"

		log.Debug("ping", slog.String("op", op))

		render.JSON(w, r, response.OK())
	}
}
