package checkAvailability

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	Availability(ctx context.Context, checkIn, checkOut string) (models.Availability, error)
}

// New answers availability queries with the bare per-room-type counts the web
// client expects: {"Deluxe": n, "Suite": n, "Standard": n}.
func New(log *slog.Logger, checker AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkAvailability.New"

		log = log.With(slog.String("op", op))

		checkIn := r.URL.Query().Get("check_in")
		checkOut := r.URL.Query().Get("check_out")

		if checkIn == "" || checkOut == "" {
			log.Error("check_in and check_out are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("check_in and check_out are required"))
			return
		}

		if _, err := time.Parse(models.DateLayout, checkIn); err != nil {
			log.Error("invalid check_in date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_in date format"))
			return
		}
		if _, err := time.Parse(models.DateLayout, checkOut); err != nil {
			log.Error("invalid check_out date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_out date format"))
			return
		}

		log = log.With(slog.String("check_in", checkIn), slog.String("check_out", checkOut))

		avail, err := checker.Availability(r.Context(), checkIn, checkOut)
		if err != nil {
			log.Error("failed to check availability", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check availability"))
			return
		}

		log.Info("availability checked",
			slog.Int("deluxe", avail.Deluxe),
			slog.Int("suite", avail.Suite),
			slog.Int("standard", avail.Standard),
		)

		render.JSON(w, r, avail)
	}
}
