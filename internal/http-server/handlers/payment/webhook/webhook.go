package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebhookVerifier
type WebhookVerifier interface {
	VerifyWebhookSignature(body, signature string) bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRecorder
type EventRecorder interface {
	RecordWebhookEvent(event, rawPayload string) error
}

type WebhookResponse struct {
	response.Response
}

// New handles Razorpay webhook deliveries. The signature covers the raw
// request body, so the body is read before any JSON decoding.
func New(log *slog.Logger, verifier WebhookVerifier, storage EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.webhook.New"

		log = log.With(slog.String("op", op))

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("failed to read request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request"))
			return
		}

		signature := r.Header.Get("X-Razorpay-Signature")

		if !verifier.VerifyWebhookSignature(string(body), signature) {
			log.Warn("bad webhook signature")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("bad signature"))
			return
		}

		var payload struct {
			Event string `json:"event"`
		}
		if err = json.Unmarshal(body, &payload); err != nil {
			log.Error("failed to decode webhook payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = storage.RecordWebhookEvent(payload.Event, string(body)); err != nil {
			log.Error("failed to record webhook event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to record event"))
			return
		}

		log.Info("webhook recorded", slog.String("event", payload.Event))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, WebhookResponse{
		Response: response.OK(),
	})
}
