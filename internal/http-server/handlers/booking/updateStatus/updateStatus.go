package updateStatus

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

type StatusResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	GetBooking(id string) (*models.Booking, error)
	UpdateBookingStatus(id, status string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	BookingConfirmed(b *models.Booking) error
	BookingRejected(b *models.Booking) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Invalidator
type Invalidator interface {
	InvalidateAvailability(ctx context.Context) error
}

func New(log *slog.Logger, booking StatusUpdater, notifier Notifier, invalidator Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateStatus.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		status := r.URL.Query().Get("status")
		switch status {
		case models.StatusPending, models.StatusConfirmed, models.StatusRejected:
		default:
			log.Error("invalid status", slog.String("status", status))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID), slog.String("status", status))

		b, err := booking.GetBooking(bookingID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		if err = booking.UpdateBookingStatus(bookingID, status); err != nil {
			log.Error("failed to update booking status", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		// Confirmed-overlap counts change whenever a booking enters or
		// leaves the confirmed status
		if status == models.StatusConfirmed || b.Status == models.StatusConfirmed {
			if err = invalidator.InvalidateAvailability(r.Context()); err != nil {
				log.Warn("failed to invalidate availability cache", sl.Err(err))
			}
		}

		// Email failures must never fail the status change
		switch status {
		case models.StatusConfirmed:
			if err = notifier.BookingConfirmed(b); err != nil {
				log.Warn("failed to send confirmation email", sl.Err(err))
			}
		case models.StatusRejected:
			if err = notifier.BookingRejected(b); err != nil {
				log.Warn("failed to send rejection email", sl.Err(err))
			}
		}

		log.Info("booking status updated")

		responseOK(w, r, status)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, status string) {
	render.JSON(w, r, StatusResponse{
		Response: response.OK(),
		Message:  fmt.Sprintf("Booking marked as %s", status),
	})
}
