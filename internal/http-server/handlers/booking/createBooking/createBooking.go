package createBooking

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"guestdesk/internal/config"
	"guestdesk/internal/lib/api/response"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

type BookingRequest struct {
	UserID   string `json:"user_id" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

// ConflictResponse carries current availability so the guest can pick other
// dates right away.
type ConflictResponse struct {
	response.Response
	AvailableRooms models.Availability `json:"available_rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(b *models.Booking) (string, error)
	ConfirmedOverlapCount(roomType models.RoomType, checkIn, checkOut string) (int, error)
	ConfirmedOverlapCounts(checkIn, checkOut string) (map[models.RoomType]int, error)
}

func New(log *slog.Logger, booking BookingCreator, hotel *config.Hotel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

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

		roomType := models.RoomType(req.RoomType)
		if !roomType.Valid() {
			log.Error("invalid room type", slog.String("room_type", req.RoomType))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room type"))
			return
		}

		if _, err = time.Parse(models.DateLayout, req.CheckIn); err != nil {
			log.Error("invalid check_in date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_in date format"))
			return
		}
		if _, err = time.Parse(models.DateLayout, req.CheckOut); err != nil {
			log.Error("invalid check_out date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_out date format"))
			return
		}

		overlapCount, err := booking.ConfirmedOverlapCount(roomType, req.CheckIn, req.CheckOut)
		if err != nil {
			log.Error("failed to check capacity", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		if overlapCount >= hotel.RoomLimit(roomType) {
			log.Warn("booking conflict",
				slog.Int("overlap_count", overlapCount),
				slog.String("room_type", string(roomType)),
			)

			responseConflict(w, r, booking, hotel, roomType, req.CheckIn, req.CheckOut)
			return
		}

		nights := models.Nights(req.CheckIn, req.CheckOut)

		b := &models.Booking{
			UserID:   req.UserID,
			Name:     req.Name,
			RoomType: roomType,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Confirmation: fmt.Sprintf("Booking request for %s, %s room from %s to %s.",
				req.Name, roomType, req.CheckIn, req.CheckOut),
			Status:        models.StatusPending,
			AmountPaise:   hotel.NightlyRate(roomType) * int64(nights),
			Currency:      hotel.Currency,
			PaymentStatus: models.PaymentInit,
		}

		bookingID, err := booking.CreateBooking(b)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created as pending",
			slog.String("booking_id", bookingID),
			slog.Int64("amount_paise", b.AmountPaise),
		)

		responseOK(w, r, b)
	}
}

// responseConflict reports no capacity together with what is still open.
func responseConflict(w http.ResponseWriter, r *http.Request, booking BookingCreator, hotel *config.Hotel, roomType models.RoomType, checkIn, checkOut string) {
	avail := models.Availability{}

	counts, err := booking.ConfirmedOverlapCounts(checkIn, checkOut)
	if err == nil {
		avail = models.Availability{
			Deluxe:   open(hotel.RoomLimit(models.RoomDeluxe), counts[models.RoomDeluxe]),
			Suite:    open(hotel.RoomLimit(models.RoomSuite), counts[models.RoomSuite]),
			Standard: open(hotel.RoomLimit(models.RoomStandard), counts[models.RoomStandard]),
		}
	}

	render.Status(r, http.StatusConflict)
	render.JSON(w, r, ConflictResponse{
		Response:       response.Error(fmt.Sprintf("no available %s rooms for these dates", roomType)),
		AvailableRooms: avail,
	})
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}

func open(limit, booked int) int {
	if booked >= limit {
		return 0
	}
	return limit - booked
}
