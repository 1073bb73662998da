// Package client is a typed HTTP client for the guestdesk backend. Terminal
// frontends and the booking flow talk to the server only through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"guestdesk/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// OrderDetails is everything the checkout widget needs to open.
type OrderDetails struct {
	KeyID string              `json:"key_id"`
	Order models.PaymentOrder `json:"order"`
}

type ConflictError struct {
	Message        string
	AvailableRooms models.Availability
}

func (e *ConflictError) Error() string {
	return e.Message
}

// envelope mirrors the server's response wrapper for error extraction.
type envelope struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/chat/ping", nil)
	if err != nil {
		return fmt.Errorf("client.Ping: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client.Ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client.Ping: unexpected status %d", resp.StatusCode)
	}

	return nil
}

// WaitReady polls the ping endpoint until the server answers or the context
// expires.
func (c *Client) WaitReady(ctx context.Context) error {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		if err := c.Ping(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("client.WaitReady: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) Chat(ctx context.Context, userID, message string) (string, error) {
	const op = "client.Chat"

	body := map[string]string{
		"user_id": userID,
		"message": message,
	}

	var out struct {
		envelope
		Reply string `json:"response"`
	}

	if err := c.post(ctx, "/chat/", body, &out); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return out.Reply, nil
}

func (c *Client) SubmitRequest(ctx context.Context, roomNumber, phoneNumber, text string) (string, error) {
	const op = "client.SubmitRequest"

	body := map[string]string{
		"room_number":  roomNumber,
		"phone_number": phoneNumber,
		"request":      text,
	}

	var out struct {
		envelope
		RequestID string `json:"request_id"`
	}

	if err := c.post(ctx, "/request/", body, &out); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return out.RequestID, nil
}

func (c *Client) CreateBooking(ctx context.Context, userID, name, roomType, checkIn, checkOut string) (*models.Booking, error) {
	const op = "client.CreateBooking"

	body := map[string]string{
		"user_id":   userID,
		"name":      name,
		"room_type": roomType,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var out struct {
		envelope
		Booking        *models.Booking     `json:"booking"`
		AvailableRooms models.Availability `json:"available_rooms"`
	}

	status, err := c.do(ctx, http.MethodPost, "/booking/", body, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if status == http.StatusConflict {
		return nil, &ConflictError{
			Message:        out.Error,
			AvailableRooms: out.AvailableRooms,
		}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", op, serverError(status, out.envelope))
	}

	return out.Booking, nil
}

func (c *Client) Availability(ctx context.Context, checkIn, checkOut string) (models.Availability, error) {
	const op = "client.Availability"

	q := url.Values{}
	q.Set("check_in", checkIn)
	q.Set("check_out", checkOut)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/booking/availability/?"+q.Encode(), nil)
	if err != nil {
		return models.Availability{}, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Availability{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Availability{}, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var env envelope
		_ = json.Unmarshal(data, &env)
		return models.Availability{}, fmt.Errorf("%s: %s", op, serverError(resp.StatusCode, env))
	}

	var avail models.Availability
	if err = json.Unmarshal(data, &avail); err != nil {
		return models.Availability{}, fmt.Errorf("%s: %w", op, err)
	}

	return avail, nil
}

func (c *Client) CreateOrder(ctx context.Context, bookingID string) (*OrderDetails, error) {
	const op = "client.CreateOrder"

	var out struct {
		envelope
		OrderDetails
	}

	status, err := c.do(ctx, http.MethodPost, "/booking/"+bookingID+"/create-order", nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", op, serverError(status, out.envelope))
	}

	return &out.OrderDetails, nil
}

func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	const op = "client.VerifyPayment"

	body := map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
	}

	var out envelope

	status, err := c.do(ctx, http.MethodPost, "/booking/payment/verify", body, &out)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%s: %s", op, serverError(status, out))
	}

	return nil
}

// post sends a JSON body and fails on any non-200 answer.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	status, err := c.do(ctx, http.MethodPost, path, body, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		if env, ok := out.(interface{ errorMessage() string }); ok && env.errorMessage() != "" {
			return fmt.Errorf("server: %s", env.errorMessage())
		}
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	if out != nil {
		if err = json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func (e envelope) errorMessage() string { return e.Error }

func serverError(status int, env envelope) string {
	if env.Error != "" {
		return env.Error
	}
	return fmt.Sprintf("unexpected status %d", status)
}
