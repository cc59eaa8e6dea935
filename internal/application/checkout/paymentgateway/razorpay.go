package paymentgateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

const defaultAPIBaseURL = "https://api.razorpay.com"

// RazorpayConfig holds the gateway credentials and endpoint
type RazorpayConfig struct {
	KeyID      string
	KeySecret  string
	APIBaseURL string
}

// RazorpayGateway creates orders against the Razorpay Orders API
type RazorpayGateway struct {
	config     RazorpayConfig
	httpClient *http.Client
	logger     logger.Interface
}

// NewRazorpayGateway creates a new Razorpay gateway client
func NewRazorpayGateway(config RazorpayConfig, log logger.Interface) *RazorpayGateway {
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	return &RazorpayGateway{
		config: config,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: log,
	}
}

// Ensure RazorpayGateway implements Gateway
var _ Gateway = (*RazorpayGateway)(nil)

type razorpayOrderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type razorpayOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder creates an order in the gateway. Failures surface as upstream
// errors; retries belong to the caller.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	body, err := json.Marshal(razorpayOrderRequest{
		Amount:         req.Amount,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.config.APIBaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.config.KeyID, g.config.KeySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logger.Errorw("gateway order creation failed", "receipt", req.Receipt, "error", err)
		return nil, apperrors.NewUpstreamError("payment gateway unreachable", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to read gateway response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Errorw("gateway rejected order creation",
			"receipt", req.Receipt,
			"status", resp.StatusCode,
			"body", string(respBody))
		return nil, apperrors.NewUpstreamError(
			fmt.Sprintf("payment gateway returned status %d", resp.StatusCode))
	}

	var order razorpayOrderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, apperrors.NewUpstreamError("invalid gateway response", err.Error())
	}
	if order.ID == "" {
		return nil, apperrors.NewUpstreamError("gateway response missing order id")
	}

	g.logger.Infow("gateway order created",
		"gateway_order_id", order.ID,
		"receipt", req.Receipt,
		"amount", req.Amount)

	return &CreateOrderResponse{GatewayOrderID: order.ID}, nil
}

// VerifySignature checks the authenticity of a payment confirmation. The
// gateway signs "{orderID}|{paymentID}" with HMAC-SHA256 under the shared key
// secret and sends the hex digest. Deterministic, side-effect-free, and fails
// closed: any missing input yields false. Comparison is constant-time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
