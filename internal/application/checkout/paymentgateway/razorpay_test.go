package paymentgateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	sig := signPayload("order_123", "pay_456", secret)

	assert.True(t, VerifySignature("order_123", "pay_456", sig, secret))

	// Deterministic: same inputs, same outcome.
	assert.True(t, VerifySignature("order_123", "pay_456", sig, secret))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	const secret = "test_secret"
	sig := signPayload("order_123", "pay_456", secret)

	// Flip one character of the signature.
	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, VerifySignature("order_123", "pay_456", string(flipped), secret))

	// Any field swap breaks verification.
	assert.False(t, VerifySignature("order_999", "pay_456", sig, secret))
	assert.False(t, VerifySignature("order_123", "pay_999", sig, secret))
	assert.False(t, VerifySignature("order_123", "pay_456", sig, "other_secret"))
	assert.False(t, VerifySignature("pay_456", "order_123", sig, secret), "order and payment ids are not interchangeable")
}

func TestVerifySignatureFailsClosedOnMissingInputs(t *testing.T) {
	const secret = "test_secret"
	sig := signPayload("order_123", "pay_456", secret)

	assert.False(t, VerifySignature("", "pay_456", sig, secret))
	assert.False(t, VerifySignature("order_123", "", sig, secret))
	assert.False(t, VerifySignature("order_123", "pay_456", "", secret))
	assert.False(t, VerifySignature("order_123", "pay_456", sig, ""))
}

func TestRazorpayGatewayCreateOrder(t *testing.T) {
	var gotPath, gotAuthUser string
	var gotBody razorpayOrderRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, _, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "order_live_abc"})
	}))
	defer srv.Close()

	g := NewRazorpayGateway(RazorpayConfig{
		KeyID:      "rzp_test_key",
		KeySecret:  "rzp_test_secret",
		APIBaseURL: srv.URL,
	}, nopLogger{})

	resp, err := g.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   49900,
		Currency: "INR",
		Receipt:  "standard:go-101:1700000000000",
		Notes:    map[string]string{"courseId": "go-101"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order_live_abc", resp.GatewayOrderID)

	assert.Equal(t, "/v1/orders", gotPath)
	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, int64(49900), gotBody.Amount)
	assert.Equal(t, "INR", gotBody.Currency)
	assert.Equal(t, 1, gotBody.PaymentCapture, "payments are auto-captured")
}

func TestRazorpayGatewayCreateOrderUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"description":"Authentication failed"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewRazorpayGateway(RazorpayConfig{
		KeyID:      "bad",
		KeySecret:  "bad",
		APIBaseURL: srv.URL,
	}, nopLogger{})

	_, err := g.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "r",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamError(err))
}

func TestRazorpayGatewayCreateOrderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	g := NewRazorpayGateway(RazorpayConfig{
		KeyID:      "k",
		KeySecret:  "s",
		APIBaseURL: srv.URL,
	}, nopLogger{})

	_, err := g.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "r",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamError(err))
}

func TestRazorpayGatewayRejectsEmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := NewRazorpayGateway(RazorpayConfig{
		KeyID:      "k",
		KeySecret:  "s",
		APIBaseURL: srv.URL,
	}, nopLogger{})

	_, err := g.CreateOrder(context.Background(), CreateOrderRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "r",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamError(err))
}

func TestMockGatewaySequencesOrders(t *testing.T) {
	g := NewMockGateway()

	first, err := g.CreateOrder(context.Background(), CreateOrderRequest{Amount: 100, Currency: "INR", Receipt: "a"})
	require.NoError(t, err)
	second, err := g.CreateOrder(context.Background(), CreateOrderRequest{Amount: 200, Currency: "INR", Receipt: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, first.GatewayOrderID, second.GatewayOrderID)
	assert.Len(t, g.Orders(), 2)
}
