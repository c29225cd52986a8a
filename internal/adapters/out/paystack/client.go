// Package paystack implements the PaymentProvider port against the
// Paystack transaction-initialize API.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mgdmdev/mgpay-test/internal/core/ports"
)

const (
	// DefaultBaseURL is the production Paystack API endpoint.
	DefaultBaseURL = "https://api.paystack.co"

	// DefaultTimeout bounds a single initialize call so a slow provider
	// cannot hold an order transaction open indefinitely.
	DefaultTimeout = 10 * time.Second
)

// Client calls the Paystack API. It makes a single attempt per
// initiation; retrying a payment initialization could issue duplicate
// checkout links, so retries are left to the caller.
type Client struct {
	baseURL     string
	secretKey   string
	serviceName string
	client      *http.Client
}

type initializeRequest struct {
	Amount   int64              `json:"amount"`
	Email    string             `json:"email"`
	Metadata initializeMetadata `json:"metadata"`
}

type initializeMetadata struct {
	Service  string `json:"service"`
	OrderID  string `json:"order_id"`
	Customer string `json:"customer"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, usually a test
// double.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.client.Timeout = timeout }
}

// NewClient creates a Paystack client authenticating with the given
// secret key. serviceName is attached to transaction metadata so
// payments can be traced back to this service.
func NewClient(secretKey, serviceName string, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		secretKey:   secretKey,
		serviceName: serviceName,
		client:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InitiatePayment creates a Paystack transaction for the order and
// returns the checkout URL and provider reference. Amounts are sent in
// subunits as the API requires.
func (c *Client) InitiatePayment(
	ctx context.Context,
	req ports.PaymentInitiationRequest,
) (ports.PaymentInitiation, error) {
	body, err := json.Marshal(initializeRequest{
		Amount: req.Amount.Subunits(),
		Email:  req.Email,
		Metadata: initializeMetadata{
			Service:  c.serviceName,
			OrderID:  req.OrderID.String(),
			Customer: req.Customer,
		},
	})
	if err != nil {
		return ports.PaymentInitiation{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return ports.PaymentInitiation{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return ports.PaymentInitiation{}, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.PaymentInitiation{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return ports.PaymentInitiation{}, fmt.Errorf(
			"paystack returned status %d: %s", resp.StatusCode, respBody)
	}

	var parsed initializeResponse
	if err = json.Unmarshal(respBody, &parsed); err != nil {
		return ports.PaymentInitiation{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !parsed.Status {
		return ports.PaymentInitiation{}, fmt.Errorf(
			"paystack rejected initialization: %s", parsed.Message)
	}
	if parsed.Data.AuthorizationURL == "" || parsed.Data.Reference == "" {
		return ports.PaymentInitiation{}, fmt.Errorf(
			"paystack response missing authorization_url or reference")
	}

	return ports.PaymentInitiation{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		Reference:        parsed.Data.Reference,
	}, nil
}
