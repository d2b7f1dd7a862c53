package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// testPaymentMethod is Stripe's always-succeeding test card. The club has
// no card-on-file flow; top-ups run against the test gateway.
const testPaymentMethod = "pm_card_visa"

// StripeClient is a Gateway backed by the Stripe PaymentIntents API.
type StripeClient struct {
	httpClient *http.Client
	secretKey  string
	BaseURL    string
}

var _ Gateway = (*StripeClient)(nil)

// NewStripeClient creates a new Stripe client.
func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		secretKey:  secretKey,
		BaseURL:    "https://api.stripe.com",
	}
}

// Charge creates and confirms a PaymentIntent for the given amount.
func (c *StripeClient) Charge(ctx context.Context, amountMinor int64, currency string) (ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("payment_method", testPaymentMethod)
	form.Set("confirm", "true")

	endpoint := c.BaseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ChargeResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.Debug("Creating payment intent", "amountMinor", amountMinor, "currency", currency)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from Stripe", "status", resp.StatusCode, "body", string(body))
		return ChargeResult{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var intent struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return ChargeResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Info("Payment intent confirmed", "intentID", intent.ID, "status", intent.Status)
	return ChargeResult{IntentID: intent.ID, Status: intent.Status}, nil
}
