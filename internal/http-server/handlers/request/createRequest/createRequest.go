package createRequest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
)

type Request struct {
	RoomNumber  string `json:"room_number" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Request     string `json:"request" validate:"required"`
}

type Response struct {
	response.Response
	RequestID string `json:"request_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestSaver
type RequestSaver interface {
	SaveServiceRequest(roomNumber, phoneNumber, request string) (string, error)
}

func New(log *slog.Logger, saver RequestSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.request.createRequest.New"

		log = log.With(slog.String("op", op))

		var req Request

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

		requestID, err := saver.SaveServiceRequest(req.RoomNumber, req.PhoneNumber, req.Request)
		if err != nil {
			log.Error("failed to save service request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit request"))
			return
		}

		log.Info("service request saved", slog.String("request_id", requestID))

		responseOK(w, r, requestID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, requestID string) {
	render.JSON(w, r, Response{
		Response:  response.OK(),
		RequestID: requestID,
	})
}
