package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
)

// Client talks to the Braintree gateway. It is constructed once at startup and
// handed to the payment handlers; the gateway is the only long-latency external
// dependency, so every call carries the request context and the HTTP client has
// a hard timeout.
type Client struct {
	merchantID string
	publicKey  string
	privateKey string
	apiURL     string
	testMode   bool
	httpClient *http.Client
}

type SaleResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Raw           string `json:"-"` // verbatim gateway response body
}

type gatewayResponse struct {
	ClientToken string `json:"client_token,omitempty"`
	Transaction *struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Amount string `json:"amount"`
	} `json:"transaction,omitempty"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.BraintreeMerchantID == "" || cfg.BraintreePublicKey == "" ||
		cfg.BraintreePrivateKey == "" || cfg.BraintreeAPIURL == "" {
		return nil, fmt.Errorf("braintree configuration missing")
	}
	return &Client{
		merchantID: cfg.BraintreeMerchantID,
		publicKey:  cfg.BraintreePublicKey,
		privateKey: cfg.BraintreePrivateKey,
		apiURL:     cfg.BraintreeAPIURL,
		testMode:   cfg.BraintreeMode == "sandbox" || cfg.BraintreeMode == "dev",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// GenerateClientToken requests a short-lived token the frontend drop-in uses to
// collect a payment method nonce.
func (c *Client) GenerateClientToken(ctx context.Context) (string, error) {
	resp, err := c.post(ctx, "/client_token", map[string]interface{}{
		"merchant_id": c.merchantID,
		"public_key":  c.publicKey,
		"private_key": c.privateKey,
	})
	if err != nil {
		return "", err
	}
	if resp.ClientToken == "" {
		return "", fmt.Errorf("gateway returned empty client token")
	}
	return resp.ClientToken, nil
}

// Sale submits an authorize-and-capture transaction for the given amount using
// a one-time payment method nonce.
func (c *Client) Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*SaleResult, error) {
	resp, err := c.post(ctx, "/transactions", map[string]interface{}{
		"merchant_id":          c.merchantID,
		"public_key":           c.publicKey,
		"private_key":          c.privateKey,
		"amount":               amount.StringFixed(2),
		"payment_method_nonce": nonce,
		"test":                 c.testMode,
		"options": map[string]interface{}{
			"submit_for_settlement": true,
		},
	})
	if err != nil {
		return nil, err
	}
	if resp.Transaction == nil {
		return nil, fmt.Errorf("gateway response missing transaction")
	}
	return &SaleResult{
		TransactionID: resp.Transaction.ID,
		Status:        resp.Transaction.Status,
		Amount:        resp.Transaction.Amount,
		Raw:           resp.raw,
	}, nil
}

type parsedResponse struct {
	gatewayResponse
	raw string
}

func (c *Client) post(ctx context.Context, path string, payload map[string]interface{}) (*parsedResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	var parsed parsedResponse
	if err := json.Unmarshal(raw, &parsed.gatewayResponse); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %w", err)
	}
	parsed.raw = string(raw)

	if parsed.Error != nil {
		return nil, fmt.Errorf("gateway error %s: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d", res.StatusCode)
	}
	return &parsed, nil
}
