package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&config.Config{
		BraintreeMerchantID: "merchant",
		BraintreePublicKey:  "public",
		BraintreePrivateKey: "private",
		BraintreeAPIURL:     srv.URL,
		BraintreeMode:       "sandbox",
	})
	require.NoError(t, err)
	return client
}

func TestNewClientMissingConfig(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}

func TestGenerateClientToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/client_token", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "merchant", payload["merchant_id"])

		json.NewEncoder(w).Encode(map[string]string{"client_token": "tok_123"})
	})

	token, err := client.GenerateClientToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok_123", token)
}

func TestSaleSubmitsAmountAndNonce(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "35.00", payload["amount"])
		assert.Equal(t, "nonce-abc", payload["payment_method_nonce"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"transaction": map[string]string{
				"id":     "txn_1",
				"status": "submitted_for_settlement",
				"amount": "35.00",
			},
		})
	})

	result, err := client.Sale(context.Background(), decimal.NewFromInt(35), "nonce-abc")
	require.NoError(t, err)
	assert.Equal(t, "txn_1", result.TransactionID)
	assert.Equal(t, "submitted_for_settlement", result.Status)
	assert.NotEmpty(t, result.Raw)
}

func TestSaleGatewayDecline(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "2001",
				"message": "Insufficient Funds",
			},
		})
	})

	_, err := client.Sale(context.Background(), decimal.NewFromInt(10), "nonce-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient Funds")
}
