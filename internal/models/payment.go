package models

import "time"

// PaymentOrder is the checkout provider's order record tied to a booking.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units (paise)
	Currency string `json:"currency"`
	Status   string `json:"status,omitempty"`
}

// PaymentRecord is a ledger row; one is appended for every order created,
// signature rejected, capture and webhook event.
type PaymentRecord struct {
	ID         int64     `json:"id"`
	BookingID  string    `json:"booking_id,omitempty"`
	OrderID    string    `json:"order_id"`
	PaymentID  string    `json:"payment_id,omitempty"`
	Signature  string    `json:"signature,omitempty"`
	Status     string    `json:"status"`
	AmountPaise int64    `json:"amount_paise"`
	Currency   string    `json:"currency"`
	RawPayload string    `json:"raw_payload,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ledger statuses.
const (
	LedgerCreated  = "created"
	LedgerFailed   = "failed"
	LedgerCaptured = "captured"
	LedgerWebhook  = "webhook"
)
