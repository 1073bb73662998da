package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"guestdesk/internal/config"
	"guestdesk/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateBooking(b *models.Booking) (string, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO bookings (id, user_id, name, room_type, check_in, check_out,
			confirmation, status, amount_paise, currency, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := s.DB.Exec(query,
		b.ID,
		b.UserID,
		b.Name,
		string(b.RoomType),
		b.CheckIn,
		b.CheckOut,
		b.Confirmation,
		b.Status,
		b.AmountPaise,
		b.Currency,
		b.PaymentStatus,
		b.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	return b.ID, nil
}

func (s *Storage) GetBooking(id string) (*models.Booking, error) {
	query := `
		SELECT id, user_id, name, room_type, check_in, check_out, confirmation,
			status, amount_paise, currency, payment_status,
			COALESCE(payment_order_id, ''), COALESCE(payment_id, ''), created_at
		FROM bookings
		WHERE id = $1`

	var b models.Booking
	err := s.DB.QueryRow(query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.RoomType,
		&b.CheckIn,
		&b.CheckOut,
		&b.Confirmation,
		&b.Status,
		&b.AmountPaise,
		&b.Currency,
		&b.PaymentStatus,
		&b.PaymentOrderID,
		&b.PaymentID,
		&b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT id, user_id, name, room_type, check_in, check_out, confirmation,
			status, amount_paise, currency, payment_status,
			COALESCE(payment_order_id, ''), COALESCE(payment_id, ''), created_at
		FROM bookings
		ORDER BY created_at`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Name,
			&b.RoomType,
			&b.CheckIn,
			&b.CheckOut,
			&b.Confirmation,
			&b.Status,
			&b.AmountPaise,
			&b.Currency,
			&b.PaymentStatus,
			&b.PaymentOrderID,
			&b.PaymentID,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) UpdateBookingStatus(id, status string) error {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

func (s *Storage) DeleteBooking(id string) error {
	query := `
		DELETE FROM bookings
		WHERE id = $1`

	_, err := s.DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

// ConfirmedOverlapCount counts confirmed bookings of one room type whose stay
// overlaps the given date range.
func (s *Storage) ConfirmedOverlapCount(roomType models.RoomType, checkIn, checkOut string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE status = 'confirmed'
		AND room_type = $1
		AND check_in < $3
		AND check_out >= $2`

	var count int
	err := s.DB.QueryRow(query, string(roomType), checkIn, checkOut).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// ConfirmedOverlapCounts does the same for every room type in one query.
func (s *Storage) ConfirmedOverlapCounts(checkIn, checkOut string) (map[models.RoomType]int, error) {
	query := `
		SELECT room_type, COUNT(*)
		FROM bookings
		WHERE status = 'confirmed'
		AND check_in < $2
		AND check_out >= $1
		GROUP BY room_type`

	rows, err := s.DB.Query(query, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.RoomType]int)
	for rows.Next() {
		var rt string
		var count int
		if err = rows.Scan(&rt, &count); err != nil {
			return nil, fmt.Errorf("failed to scan overlap count: %w", err)
		}
		counts[models.RoomType(rt)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overlap counts: %w", err)
	}

	return counts, nil
}

// MarkOrderCreated persists the provider order id on the booking and appends
// a ledger row, in one transaction.
func (s *Storage) MarkOrderCreated(bookingID string, order *models.PaymentOrder, rawPayload string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE bookings
		SET payment_order_id = $2, payment_status = 'created'
		WHERE id = $1`

	result, err := tx.Exec(updateQuery, bookingID, order.ID)
	if err != nil {
		return fmt.Errorf("failed to attach order to booking: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("booking not found")
	}

	insertQuery := `
		INSERT INTO payments (booking_id, order_id, amount_paise, currency, status, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	_, err = tx.Exec(insertQuery, bookingID, order.ID, order.Amount, order.Currency, models.LedgerCreated, rawPayload)
	if err != nil {
		return fmt.Errorf("failed to insert ledger row: %w", err)
	}

	return tx.Commit()
}

// MarkPaid flips the booking that produced the order to paid/confirmed and
// appends a captured ledger row. Returns the booking for notification.
func (s *Storage) MarkPaid(orderID, paymentID, signature, rawPayload string) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `
		SELECT id, user_id, name, room_type, check_in, check_out, confirmation,
			status, amount_paise, currency, payment_status,
			COALESCE(payment_order_id, ''), COALESCE(payment_id, ''), created_at
		FROM bookings
		WHERE payment_order_id = $1`

	var b models.Booking
	err = tx.QueryRow(selectQuery, orderID).Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.RoomType,
		&b.CheckIn,
		&b.CheckOut,
		&b.Confirmation,
		&b.Status,
		&b.AmountPaise,
		&b.Currency,
		&b.PaymentStatus,
		&b.PaymentOrderID,
		&b.PaymentID,
		&b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found for order")
		}
		return nil, fmt.Errorf("failed to find booking for order: %w", err)
	}

	updateQuery := `
		UPDATE bookings
		SET payment_status = 'paid', payment_id = $2, status = 'confirmed'
		WHERE id = $1`

	_, err = tx.Exec(updateQuery, b.ID, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	insertQuery := `
		INSERT INTO payments (booking_id, order_id, payment_id, signature, amount_paise, currency, status, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	_, err = tx.Exec(insertQuery, b.ID, orderID, paymentID, signature, b.AmountPaise, b.Currency, models.LedgerCaptured, rawPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger row: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	b.PaymentStatus = models.PaymentPaid
	b.PaymentID = paymentID
	b.Status = models.StatusConfirmed

	return &b, nil
}

// RecordFailedPayment logs a rejected signature attempt.
func (s *Storage) RecordFailedPayment(orderID, paymentID, signature, rawPayload string) error {
	query := `
		INSERT INTO payments (order_id, payment_id, signature, amount_paise, currency, status, raw_payload, created_at)
		VALUES ($1, $2, $3, 0, 'INR', $4, $5, NOW())`

	_, err := s.DB.Exec(query, orderID, paymentID, signature, models.LedgerFailed, rawPayload)
	if err != nil {
		return fmt.Errorf("failed to record failed payment: %w", err)
	}

	return nil
}

// RecordWebhookEvent appends a provider webhook event to the ledger.
func (s *Storage) RecordWebhookEvent(event, rawPayload string) error {
	query := `
		INSERT INTO payments (order_id, amount_paise, currency, status, raw_payload, created_at)
		VALUES ($1, 0, 'INR', $2, $3, NOW())`

	_, err := s.DB.Exec(query, event, models.LedgerWebhook, rawPayload)
	if err != nil {
		return fmt.Errorf("failed to record webhook event: %w", err)
	}

	return nil
}

func (s *Storage) SaveServiceRequest(roomNumber, phoneNumber, request string) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO requests (id, room_number, phone_number, request, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	_, err := s.DB.Exec(query, id, roomNumber, phoneNumber, request)
	if err != nil {
		return "", fmt.Errorf("failed to save request: %w", err)
	}

	return id, nil
}

func (s *Storage) SaveChatMessage(userID, message, reply string) error {
	query := `
		INSERT INTO chat_messages (user_id, message, reply, created_at)
		VALUES ($1, $2, $3, NOW())`

	_, err := s.DB.Exec(query, userID, message, reply)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return nil
}

// CancelExpiredBookings removes pending bookings whose payment never arrived
// within ttl.
func (s *Storage) CancelExpiredBookings(ttl time.Duration) error {
	query := `
		DELETE FROM bookings
		WHERE status = 'pending'
		AND payment_status != 'paid'
		AND created_at < NOW() - $1::interval`

	result, err := s.DB.Exec(query, fmt.Sprintf("%d seconds", int(ttl.Seconds())))
	if err != nil {
		return fmt.Errorf("failed to cancel expired bookings: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		fmt.Printf("Cancelled %d expired bookings\n", rowsAffected)
	}

	return nil
}
