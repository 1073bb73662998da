// Package flow drives a guest booking from form input through checkout to a
// verified payment. One Flow runs one booking at a time; the state advances
// only on confirmed server answers, never on optimistic local guesses.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"guestdesk/internal/client"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

type State string

const (
	StateIdle           State = "idle"
	StateBookingCreated State = "booking_created"
	StateOrderCreated   State = "order_created"
	StateVerifying      State = "verifying"
	StatePaid           State = "paid"
	StateFailed         State = "failed"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

var (
	// ErrBusy means a booking run is already in progress on this Flow.
	ErrBusy = errors.New("a booking is already in progress")

	// ErrCheckoutDismissed means the guest closed the checkout without
	// paying. The order stays open and payment can be resumed.
	ErrCheckoutDismissed = errors.New("checkout dismissed")

	// ErrNoBookingID means the server accepted the booking but returned
	// no identifier, so no order can ever be created for it.
	ErrNoBookingID = errors.New("server returned booking without id")
)

// BookingForm holds the guest's input before anything touches the network.
type BookingForm struct {
	UserID   string `validate:"required,email"`
	Name     string `validate:"required"`
	RoomType string `validate:"required"`
	CheckIn  string `validate:"required"`
	CheckOut string `validate:"required"`
}

// DefaultForm returns the form as the booking page first shows it.
func DefaultForm() BookingForm {
	return BookingForm{
		RoomType: string(models.RoomDeluxe),
	}
}

func (f BookingForm) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return err
	}

	if !models.RoomType(f.RoomType).Valid() {
		return fmt.Errorf("invalid room type %q", f.RoomType)
	}

	checkIn, err := time.Parse(models.DateLayout, f.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse(models.DateLayout, f.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date: %w", err)
	}
	if checkOut.Before(checkIn) {
		return errors.New("check-out date is before check-in")
	}

	return nil
}

// CheckoutParams is what the payment widget needs to open.
type CheckoutParams struct {
	KeyID       string
	OrderID     string
	Amount      int64
	Currency    string
	Name        string
	Email       string
	Description string
}

// CheckoutResult carries the widget's success callback values.
type CheckoutResult struct {
	PaymentID string
	Signature string
}

// Checkout presents the payment step to the guest. Implementations return
// ErrCheckoutDismissed when the guest closes it without paying.
type Checkout interface {
	Run(ctx context.Context, params CheckoutParams) (CheckoutResult, error)
}

// API is the slice of the backend client the flow drives.
type API interface {
	CreateBooking(ctx context.Context, userID, name, roomType, checkIn, checkOut string) (*models.Booking, error)
	CreateOrder(ctx context.Context, bookingID string) (*client.OrderDetails, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error
}

type Flow struct {
	log      *slog.Logger
	api      API
	checkout Checkout

	mu            sync.Mutex
	busy          bool
	state         State
	form          BookingForm
	booking       *models.Booking
	order         *client.OrderDetails
	paymentStatus string
}

func New(log *slog.Logger, api API, checkout Checkout) *Flow {
	return &Flow{
		log:           log,
		api:           api,
		checkout:      checkout,
		state:         StateIdle,
		form:          DefaultForm(),
		paymentStatus: PaymentPending,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) PaymentStatus() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paymentStatus
}

func (f *Flow) Form() BookingForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *Flow) SetForm(form BookingForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = form
}

func (f *Flow) Booking() *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.booking
}

// Reset clears the flow back to a fresh booking page.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateIdle
	f.form = DefaultForm()
	f.booking = nil
	f.order = nil
	f.paymentStatus = PaymentPending
}

// Run takes the current form through booking, order and checkout. The form is
// validated before the first request leaves the client.
func (f *Flow) Run(ctx context.Context) error {
	const op = "flow.Run"

	if err := f.acquire(); err != nil {
		return err
	}
	defer f.release()

	form := f.Form()
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b, err := f.api.CreateBooking(ctx, form.UserID, form.Name, form.RoomType, form.CheckIn, form.CheckOut)
	if err != nil {
		f.log.Error("failed to create booking", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if b == nil || b.ID == "" {
		f.log.Error("booking response has no id")
		return fmt.Errorf("%s: %w", op, ErrNoBookingID)
	}

	f.mu.Lock()
	f.state = StateBookingCreated
	f.booking = b
	f.paymentStatus = PaymentPending
	f.mu.Unlock()

	f.log.Info("booking created", slog.String("booking_id", b.ID))

	return f.pay(ctx, b)
}

// ResumePayment re-opens checkout for a booking whose earlier payment attempt
// was dismissed or failed.
func (f *Flow) ResumePayment(ctx context.Context, bookingID string) error {
	const op = "flow.ResumePayment"

	if err := f.acquire(); err != nil {
		return err
	}
	defer f.release()

	if bookingID == "" {
		return fmt.Errorf("%s: booking id is required", op)
	}

	f.mu.Lock()
	b := f.booking
	if b == nil || b.ID != bookingID {
		b = &models.Booking{ID: bookingID}
		f.booking = b
	}
	f.state = StateBookingCreated
	f.paymentStatus = PaymentPending
	f.mu.Unlock()

	return f.pay(ctx, b)
}

// pay runs order creation, checkout and verification for a created booking.
func (f *Flow) pay(ctx context.Context, b *models.Booking) error {
	const op = "flow.pay"

	order, err := f.api.CreateOrder(ctx, b.ID)
	if err != nil {
		f.log.Error("failed to create order", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	f.state = StateOrderCreated
	f.order = order
	f.mu.Unlock()

	f.log.Info("order created", slog.String("order_id", order.Order.ID))

	result, err := f.checkout.Run(ctx, CheckoutParams{
		KeyID:       order.KeyID,
		OrderID:     order.Order.ID,
		Amount:      order.Order.Amount,
		Currency:    order.Order.Currency,
		Name:        b.Name,
		Email:       b.UserID,
		Description: b.Confirmation,
	})
	if err != nil {
		if errors.Is(err, ErrCheckoutDismissed) {
			f.log.Info("checkout dismissed", slog.String("booking_id", b.ID))
			return err
		}

		f.setFailed()
		f.log.Error("checkout failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	f.state = StateVerifying
	f.mu.Unlock()

	if err = f.api.VerifyPayment(ctx, order.Order.ID, result.PaymentID, result.Signature); err != nil {
		f.setFailed()
		f.log.Error("payment verification failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	f.mu.Lock()
	f.state = StatePaid
	f.paymentStatus = PaymentPaid
	f.mu.Unlock()

	f.log.Info("payment verified", slog.String("booking_id", b.ID))

	return nil
}

// setFailed marks the run failed without touching paymentStatus: the payment
// is only paid once the server has verified it.
func (f *Flow) setFailed() {
	f.mu.Lock()
	f.state = StateFailed
	f.mu.Unlock()
}

func (f *Flow) acquire() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy {
		return ErrBusy
	}
	f.busy = true
	return nil
}

func (f *Flow) release() {
	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()
}

// FormatAmount renders a paise amount the way the payment page shows it,
// e.g. 400000 INR becomes "₹4000.00 INR".
func FormatAmount(paise int64, currency string) string {
	return fmt.Sprintf("₹%d.%02d %s", paise/100, paise%100, currency)
}
