package midtrans

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to the Midtrans Snap and Core APIs with direct HTTP calls.
// Authentication is HTTP Basic with the server key as username and an empty
// password.
type Client struct {
	serverKey string
	baseURL   string
	client    *http.Client
}

// NewClient builds a Snap client for the sandbox or production environment.
func NewClient(serverKey string, production bool) *Client {
	baseURL := "https://api.sandbox.midtrans.com"
	if production {
		baseURL = "https://api.midtrans.com"
	}
	return &Client{
		serverKey: serverKey,
		baseURL:   baseURL,
		client:    &http.Client{},
	}
}

// DefaultEnabledPayments is applied when the caller does not restrict payment
// methods: QRIS, bank transfer, GoPay, ShopeePay and cards.
var DefaultEnabledPayments = []string{
	"credit_card",
	"gopay",
	"shopeepay",
	"qris",
	"bank_transfer",
	"bca_va",
	"bni_va",
	"bri_va",
	"permata_va",
	"other_va",
}

type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int    `json:"gross_amount"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type ItemDetails struct {
	ID       string `json:"id"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type creditCard struct {
	Secure bool `json:"secure"`
}

// SnapRequest is the payload for POST /snap/v1/transactions.
type SnapRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    *CustomerDetails   `json:"customer_details,omitempty"`
	ItemDetails        []ItemDetails      `json:"item_details,omitempty"`
	EnabledPayments    []string           `json:"enabled_payments,omitempty"`
	CreditCard         *creditCard        `json:"credit_card,omitempty"`
}

// SnapResponse carries the hosted-checkout token and redirect URL.
type SnapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreateTransaction opens a Snap hosted-checkout session. When the request
// carries no enabled_payments the default allow-list is applied, and 3DS is
// always requested for cards.
func (c *Client) CreateTransaction(ctx context.Context, req SnapRequest) (*SnapResponse, error) {
	if len(req.EnabledPayments) == 0 {
		req.EnabledPayments = DefaultEnabledPayments
	}
	req.CreditCard = &creditCard{Secure: true}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snap request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/snap/v1/transactions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send snap request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snap response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("midtrans snap error: status %d, body: %s", resp.StatusCode, string(raw))
	}

	var out SnapResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snap response: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("midtrans snap response missing token, body: %s", string(raw))
	}
	return &out, nil
}

// TransactionStatus polls GET /v2/{orderId}/status, the fallback path when a
// webhook delivery is in doubt.
func (c *Client) TransactionStatus(ctx context.Context, orderID string) (*Notification, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/"+orderID+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send status request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("midtrans status error: status %d, body: %s", resp.StatusCode, string(raw))
	}

	var out Notification
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status response: %w", err)
	}
	return &out, nil
}

func (c *Client) setHeaders(req *http.Request) {
	auth := base64.StdEncoding.EncodeToString([]byte(c.serverKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
}
