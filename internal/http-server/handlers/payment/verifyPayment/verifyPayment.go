package verifyPayment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

// VerifyRequest carries the three fields the checkout widget hands to its
// success callback, posted to the backend as-is.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SignatureVerifier
type SignatureVerifier interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentStore
type PaymentStore interface {
	MarkPaid(orderID, paymentID, signature, rawPayload string) (*models.Booking, error)
	RecordFailedPayment(orderID, paymentID, signature, rawPayload string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	BookingConfirmed(b *models.Booking) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Invalidator
type Invalidator interface {
	InvalidateAvailability(ctx context.Context) error
}

func New(log *slog.Logger, verifier SignatureVerifier, storage PaymentStore, notifier Notifier, invalidator Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.verifyPayment.New"

		log = log.With(slog.String("op", op))

		var req VerifyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("missing payment fields", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		log = log.With(
			slog.String("order_id", req.OrderID),
			slog.String("payment_id", req.PaymentID),
		)

		rawPayload, _ := json.Marshal(req)

		if !verifier.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
			log.Warn("invalid payment signature")

			if err = storage.RecordFailedPayment(req.OrderID, req.PaymentID, req.Signature, string(rawPayload)); err != nil {
				log.Error("failed to record failed payment", sl.Err(err))
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid signature"))
			return
		}

		b, err := storage.MarkPaid(req.OrderID, req.PaymentID, req.Signature, string(rawPayload))
		if err != nil {
			log.Error("failed to mark booking paid", sl.Err(err))

			if err.Error() == "booking not found for order" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found for order"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to verify payment"))
			return
		}

		// Confirmed rooms change availability; stale snapshots must go
		if err = invalidator.InvalidateAvailability(r.Context()); err != nil {
			log.Warn("failed to invalidate availability cache", sl.Err(err))
		}

		if err = notifier.BookingConfirmed(b); err != nil {
			log.Warn("failed to send confirmation email", sl.Err(err))
		}

		log.Info("payment verified", slog.String("booking_id", b.ID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, VerifyResponse{
		Response: response.OK(),
	})
}
