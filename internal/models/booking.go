package models

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type RoomType string

const (
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
	RoomStandard RoomType = "Standard"
)

// RoomTypes lists every bookable room type.
func RoomTypes() []RoomType {
	return []RoomType{RoomDeluxe, RoomSuite, RoomStandard}
}

func (rt RoomType) Valid() bool {
	switch rt {
	case RoomDeluxe, RoomSuite, RoomStandard:
		return true
	}
	return false
}

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// Payment statuses of a booking.
const (
	PaymentInit    = "init"
	PaymentCreated = "created"
	PaymentFailed  = "failed"
	PaymentPaid    = "paid"
)

type Booking struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"` // guest email
	Name           string    `json:"name"`
	RoomType       RoomType  `json:"room_type"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Confirmation   string    `json:"confirmation"`
	Status         string    `json:"status"`
	AmountPaise    int64     `json:"amount_paise"`
	Currency       string    `json:"currency"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentOrderID string    `json:"payment_order_id,omitempty"`
	PaymentID      string    `json:"payment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Nights returns the billable night count for a stay, never less than one.
func Nights(checkIn, checkOut string) int {
	ci, err1 := time.Parse(DateLayout, checkIn)
	co, err2 := time.Parse(DateLayout, checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	n := int(co.Sub(ci).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}
