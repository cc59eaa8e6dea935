package usecases

import (
	"context"
	"fmt"

	"gurukul/internal/application/checkout/dto"
	"gurukul/internal/application/checkout/paymentgateway"
	"gurukul/internal/domain/course"
	"gurukul/internal/shared/biztime"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// CreateOrderCommand carries the checkout request
type CreateOrderCommand struct {
	CourseID   string
	CourseType string
}

// CreateOrderUseCase creates a payment-gateway order for a course, priced
// from the catalog. Stateless: nothing is persisted locally.
type CreateOrderUseCase struct {
	courseRepo course.Repository
	gateway    paymentgateway.Gateway
	currency   string
	logger     logger.Interface
}

// NewCreateOrderUseCase creates a new create order use case
func NewCreateOrderUseCase(
	courseRepo course.Repository,
	gateway paymentgateway.Gateway,
	currency string,
	log logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		courseRepo: courseRepo,
		gateway:    gateway,
		currency:   currency,
		logger:     log,
	}
}

// Execute executes the create order use case
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderResponse, error) {
	if cmd.CourseID == "" || cmd.CourseType == "" {
		return nil, apperrors.NewValidationError("courseId and courseType are required")
	}

	kind, err := course.ParseKind(cmd.CourseType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	c, err := uc.courseRepo.GetByID(ctx, kind, cmd.CourseID)
	if err != nil {
		return nil, err
	}

	amount, err := c.AmountMinorUnits()
	if err != nil {
		// A course with no usable price must never silently charge 0.
		uc.logger.Errorw("course price unusable for checkout",
			"course_id", c.ID(),
			"price", c.Price(),
			"error", err)
		return nil, apperrors.NewInvalidStateError("course price is missing or unparsable")
	}
	if amount <= 0 {
		return nil, apperrors.NewInvalidStateError("course price must be positive")
	}

	receipt := fmt.Sprintf("%s:%s:%d", kind, c.ID(), biztime.NowUTC().UnixMilli())

	order, err := uc.gateway.CreateOrder(ctx, paymentgateway.CreateOrderRequest{
		Amount:   amount,
		Currency: uc.currency,
		Receipt:  receipt,
		Notes: map[string]string{
			"courseId":   c.ID(),
			"courseType": kind.String(),
		},
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("failed to create gateway order", err.Error())
	}

	uc.logger.Infow("order created",
		"course_id", c.ID(),
		"course_type", kind,
		"amount", amount,
		"gateway_order_id", order.GatewayOrderID,
		"receipt", receipt)

	return &dto.OrderResponse{
		Amount:   amount,
		Currency: uc.currency,
		OrderID:  order.GatewayOrderID,
		Receipt:  receipt,
	}, nil
}
