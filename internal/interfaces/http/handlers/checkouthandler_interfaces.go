package handlers

import (
	"context"

	checkoutdto "gurukul/internal/application/checkout/dto"
	"gurukul/internal/application/checkout/usecases"
)

// Use case interfaces for CheckoutHandler

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*checkoutdto.OrderResponse, error)
}

type verifyPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyPaymentCommand) (*usecases.VerifyPaymentResult, error)
}
