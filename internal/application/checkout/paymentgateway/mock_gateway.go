package paymentgateway

import (
	"context"
	"fmt"
	"sync"
)

// MockGateway is an in-memory Gateway for tests and local development.
type MockGateway struct {
	mu      sync.Mutex
	counter int
	orders  []CreateOrderRequest

	// Err, when set, is returned by CreateOrder to simulate gateway failure.
	Err error
}

// NewMockGateway creates a mock gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

var _ Gateway = (*MockGateway)(nil)

// CreateOrder records the request and returns a synthetic order ID
func (g *MockGateway) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Err != nil {
		return nil, g.Err
	}

	g.counter++
	g.orders = append(g.orders, req)
	return &CreateOrderResponse{
		GatewayOrderID: fmt.Sprintf("order_mock%06d", g.counter),
	}, nil
}

// Orders returns the requests recorded so far
func (g *MockGateway) Orders() []CreateOrderRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]CreateOrderRequest, len(g.orders))
	copy(out, g.orders)
	return out
}
