package usecases

import (
	"context"
	"fmt"
	"time"

	"gurukul/internal/application/checkout/paymentgateway"
	"gurukul/internal/domain/course"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/goroutine"
	"gurukul/internal/shared/logger"
)

// PaymentNotification carries the data for payment-related notifications
type PaymentNotification struct {
	UserID      string
	CourseID    string
	CourseTitle string
	CourseType  string
	PaymentID   string
	Amount      int64 // smallest currency unit; 0 when unknown
}

// PaymentNotifier notifies operators about payment outcomes
type PaymentNotifier interface {
	NotifyPaymentVerified(ctx context.Context, n PaymentNotification) error
	NotifyGrantFailed(ctx context.Context, n PaymentNotification) error
}

// VerifyPaymentCommand carries a gateway payment confirmation
type VerifyPaymentCommand struct {
	OrderID    string
	PaymentID  string
	Signature  string
	CourseID   string
	UserID     string
	CourseType string
}

// VerifyPaymentResult is returned on successful verification and grant
type VerifyPaymentResult struct {
	CourseID string
}

// VerifyPaymentUseCase validates the authenticity of a payment confirmation
// and, on success, grants the entitlement. A signature mismatch is a
// permanent rejection and never enrolls. A grant failure after a verified
// payment is surfaced to the user with the payment ID as the recovery path,
// never retried silently and never partially granted.
type VerifyPaymentUseCase struct {
	grantUC    *GrantEntitlementUseCase
	courseRepo course.Repository
	keySecret  string
	notifier   PaymentNotifier // optional
	logger     logger.Interface
}

// NewVerifyPaymentUseCase creates a new verify payment use case
func NewVerifyPaymentUseCase(
	grantUC *GrantEntitlementUseCase,
	courseRepo course.Repository,
	keySecret string,
	log logger.Interface,
) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{
		grantUC:    grantUC,
		courseRepo: courseRepo,
		keySecret:  keySecret,
		logger:     log,
	}
}

// SetNotifier sets the payment notifier (optional dependency injection)
func (uc *VerifyPaymentUseCase) SetNotifier(notifier PaymentNotifier) {
	uc.notifier = notifier
}

// Execute executes the verify payment use case
func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, cmd VerifyPaymentCommand) (*VerifyPaymentResult, error) {
	if cmd.OrderID == "" || cmd.PaymentID == "" || cmd.Signature == "" ||
		cmd.CourseID == "" || cmd.UserID == "" || cmd.CourseType == "" {
		return nil, apperrors.NewValidationError("missing required payment confirmation fields")
	}

	if !paymentgateway.VerifySignature(cmd.OrderID, cmd.PaymentID, cmd.Signature, uc.keySecret) {
		uc.logger.Warnw("payment signature mismatch, possible tamper attempt",
			"order_id", cmd.OrderID,
			"payment_id", cmd.PaymentID,
			"user_id", cmd.UserID,
			"course_id", cmd.CourseID)
		return nil, apperrors.NewVerificationFailedError("payment signature verification failed")
	}

	_, err := uc.grantUC.Execute(ctx, GrantEntitlementCommand{
		UserID:           cmd.UserID,
		CourseID:         cmd.CourseID,
		CourseType:       cmd.CourseType,
		PaymentReference: cmd.PaymentID,
	})
	if err != nil {
		if apperrors.IsConflictError(err) {
			// Callback replay: the payment is already recorded, acknowledge it.
			uc.logger.Infow("payment already processed",
				"payment_id", cmd.PaymentID,
				"user_id", cmd.UserID)
			return &VerifyPaymentResult{CourseID: cmd.CourseID}, nil
		}

		uc.logger.Errorw("enrollment failed after verified payment",
			"payment_id", cmd.PaymentID,
			"user_id", cmd.UserID,
			"course_id", cmd.CourseID,
			"error", err)
		uc.notify(cmd, false)

		if apperrors.IsNotFoundError(err) || apperrors.IsValidationError(err) {
			return nil, err
		}
		return nil, apperrors.NewInternalError(
			fmt.Sprintf("payment verified but enrollment failed; contact support with payment ID %s", cmd.PaymentID),
			err.Error())
	}

	uc.logger.Infow("payment verified and entitlement granted",
		"payment_id", cmd.PaymentID,
		"user_id", cmd.UserID,
		"course_id", cmd.CourseID)
	uc.notify(cmd, true)

	return &VerifyPaymentResult{CourseID: cmd.CourseID}, nil
}

// notify reports the payment outcome to operators, best effort and
// non-blocking.
func (uc *VerifyPaymentUseCase) notify(cmd VerifyPaymentCommand, verified bool) {
	if uc.notifier == nil {
		return
	}

	goroutine.SafeGo(uc.logger, "verify-payment-notify", func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n := PaymentNotification{
			UserID:     cmd.UserID,
			CourseID:   cmd.CourseID,
			CourseType: cmd.CourseType,
			PaymentID:  cmd.PaymentID,
		}

		if kind, err := course.ParseKind(cmd.CourseType); err == nil {
			if c, err := uc.courseRepo.GetByID(notifyCtx, kind, cmd.CourseID); err == nil {
				n.CourseTitle = c.Title()
				if amount, err := c.AmountMinorUnits(); err == nil {
					n.Amount = amount
				}
			}
		}

		var err error
		if verified {
			err = uc.notifier.NotifyPaymentVerified(notifyCtx, n)
		} else {
			err = uc.notifier.NotifyGrantFailed(notifyCtx, n)
		}
		if err != nil {
			uc.logger.Warnw("failed to send payment notification",
				"payment_id", cmd.PaymentID,
				"error", err)
		}
	})
}
