package createOrder

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

type OrderResponse struct {
	response.Response
	KeyID string               `json:"key_id"`
	Order *models.PaymentOrder `json:"order"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderCreator
type OrderCreator interface {
	KeyID() string
	CreateOrder(amountPaise int64, currency, receipt string) (*models.PaymentOrder, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderStore
type OrderStore interface {
	GetBooking(id string) (*models.Booking, error)
	MarkOrderCreated(bookingID string, order *models.PaymentOrder, rawPayload string) error
}

func New(log *slog.Logger, provider OrderCreator, storage OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.createOrder.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		b, err := storage.GetBooking(bookingID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create order"))
			return
		}

		// Only an untouched or previously failed payment may start over
		if b.PaymentStatus != models.PaymentInit && b.PaymentStatus != models.PaymentFailed {
			log.Warn("payment already initiated", slog.String("payment_status", b.PaymentStatus))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment already initiated"))
			return
		}

		if b.AmountPaise <= 0 {
			log.Error("booking amount is zero or invalid", slog.Int64("amount_paise", b.AmountPaise))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking amount is zero or invalid"))
			return
		}

		order, err := provider.CreateOrder(b.AmountPaise, b.Currency, fmt.Sprintf("bk_%s", bookingID))
		if err != nil {
			log.Error("failed to create provider order", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to create order"))
			return
		}

		rawPayload, _ := json.Marshal(order)

		if err = storage.MarkOrderCreated(bookingID, order, string(rawPayload)); err != nil {
			log.Error("failed to persist order", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create order"))
			return
		}

		log.Info("payment order created",
			slog.String("order_id", order.ID),
			slog.Int64("amount_paise", order.Amount),
		)

		responseOK(w, r, provider.KeyID(), order)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, keyID string, order *models.PaymentOrder) {
	render.JSON(w, r, OrderResponse{
		Response: response.OK(),
		KeyID:    keyID,
		Order:    order,
	})
}
