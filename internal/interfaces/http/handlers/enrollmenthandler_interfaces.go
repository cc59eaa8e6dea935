package handlers

import (
	"context"

	checkoutdto "gurukul/internal/application/checkout/dto"
	"gurukul/internal/application/checkout/usecases"
)

// Use case interfaces for EnrollmentHandler

type listEntitlementsUseCase interface {
	Execute(ctx context.Context, query usecases.ListEntitlementsQuery) ([]checkoutdto.EntitlementResponse, error)
}

type evaluateAccessUseCase interface {
	Execute(ctx context.Context, query usecases.EvaluateAccessQuery) (*checkoutdto.AccessStatusResponse, error)
}

type grantEntitlementUseCase interface {
	Execute(ctx context.Context, cmd usecases.GrantEntitlementCommand) (*checkoutdto.EntitlementResponse, error)
}

type revokeEntitlementUseCase interface {
	Execute(ctx context.Context, cmd usecases.RevokeEntitlementCommand) error
}
