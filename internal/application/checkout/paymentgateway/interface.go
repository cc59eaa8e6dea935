// Package paymentgateway integrates the external payment gateway used for
// course checkout. Order creation is an outbound call; payment confirmation
// arrives from the client carrying the gateway's signature.
package paymentgateway

import "context"

// Gateway defines the interface for payment gateway integrations
type Gateway interface {
	// CreateOrder creates a remote order and returns the gateway's opaque
	// order ID. Amount is in the smallest currency unit (paise).
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
}

// CreateOrderRequest contains the data needed to create a gateway order
type CreateOrderRequest struct {
	Amount   int64 // smallest currency unit (100 = 1 INR)
	Currency string
	Receipt  string
	Notes    map[string]string
}

// CreateOrderResponse contains the created gateway order
type CreateOrderResponse struct {
	GatewayOrderID string
}
