package sendMessage

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
)

type MessageRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	response.Response
	Reply string `json:"response"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Replier
type Replier interface {
	Reply(userID, message string) (string, error)
}

func New(log *slog.Logger, concierge Replier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.sendMessage.New"

		log = log.With(slog.String("op", op))

		var req MessageRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		reply, err := concierge.Reply(req.UserID, req.Message)
		if err != nil {
			log.Error("failed to build reply", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process message"))
			return
		}

		log.Info("message answered", slog.String("user_id", req.UserID))

		responseOK(w, r, reply)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reply string) {
	render.JSON(w, r, MessageResponse{
		Response: response.OK(),
		Reply:    reply,
	})
}
