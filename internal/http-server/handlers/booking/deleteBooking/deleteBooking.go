package deleteBooking

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
)

type DeleteResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(id string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Invalidator
type Invalidator interface {
	InvalidateAvailability(ctx context.Context) error
}

func New(log *slog.Logger, booking BookingDeleter, invalidator Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		if err := booking.DeleteBooking(bookingID); err != nil {
			log.Error("failed to delete booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		// A removed booking may free up confirmed rooms
		if err := invalidator.InvalidateAvailability(r.Context()); err != nil {
			log.Warn("failed to invalidate availability cache", sl.Err(err))
		}

		log.Info("booking deleted", slog.String("booking_id", bookingID))

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Message:  "Booking deleted",
		})
	}
}
