package razorpay

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"

	"guestdesk/internal/config"
	"guestdesk/internal/models"
)

// Client wraps the provider SDK: order creation plus payment and webhook
// signature verification.
type Client struct {
	api           *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func New(cfg *config.Razorpay) *Client {
	return &Client{
		api:           razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
	}
}

// KeyID is the public key the checkout widget is configured with.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates an auto-captured provider order for the given amount in
// minor currency units.
func (c *Client) CreateOrder(amountPaise int64, currency, receipt string) (*models.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := c.api.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("provider order response has no id")
	}

	order := &models.PaymentOrder{
		ID:       id,
		Amount:   amountPaise,
		Currency: currency,
	}

	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}

	return order, nil
}

// VerifyPaymentSignature checks the HMAC-SHA256 signature the checkout widget
// hands back after a successful payment.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}

	return utils.VerifyPaymentSignature(params, signature, c.keySecret)
}

// VerifyWebhookSignature checks the signature header of a provider webhook
// delivery against the raw request body.
func (c *Client) VerifyWebhookSignature(body, signature string) bool {
	return utils.VerifyWebhookSignature(body, signature, c.webhookSecret)
}
