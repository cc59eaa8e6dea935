package usecases

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/internal/domain/course"
	apperrors "gurukul/internal/shared/errors"
)

const testKeySecret = "rzp_test_secret"

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

type recordingNotifier struct {
	verified chan PaymentNotification
	failed   chan PaymentNotification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		verified: make(chan PaymentNotification, 1),
		failed:   make(chan PaymentNotification, 1),
	}
}

func (n *recordingNotifier) NotifyPaymentVerified(ctx context.Context, p PaymentNotification) error {
	n.verified <- p
	return nil
}

func (n *recordingNotifier) NotifyGrantFailed(ctx context.Context, p PaymentNotification) error {
	n.failed <- p
	return nil
}

func newVerifyFixture(t *testing.T) (*VerifyPaymentUseCase, *fakeEnrollmentRepo, *fakeCourseRepo) {
	t.Helper()
	courseRepo := newFakeCourseRepo(testCourse(t, "go-101", course.KindStandard, "499", nil))
	entRepo := newFakeEnrollmentRepo()
	grantUC := NewGrantEntitlementUseCase(courseRepo, newFakeUserRepo(), entRepo, nopLogger{})
	return NewVerifyPaymentUseCase(grantUC, courseRepo, testKeySecret, nopLogger{}), entRepo, courseRepo
}

func validCommand() VerifyPaymentCommand {
	return VerifyPaymentCommand{
		OrderID:    "order_123",
		PaymentID:  "pay_456",
		Signature:  sign("order_123", "pay_456"),
		CourseID:   "go-101",
		UserID:     "user-1",
		CourseType: "standard",
	}
}

func TestVerifyPaymentGrantsOnValidSignature(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)

	result, err := uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	assert.Equal(t, "go-101", result.CourseID)
	assert.Equal(t, 1, entRepo.count())

	rows, err := entRepo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pay_456", rows[0].PaymentReference())
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)

	cmd := validCommand()
	cmd.Signature = sign("order_123", "pay_other")

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, apperrors.IsVerificationFailedError(err))
	assert.Zero(t, entRepo.count(), "a rejected confirmation must never enroll")
}

func TestVerifyPaymentValidation(t *testing.T) {
	uc, _, _ := newVerifyFixture(t)

	fields := []func(*VerifyPaymentCommand){
		func(c *VerifyPaymentCommand) { c.OrderID = "" },
		func(c *VerifyPaymentCommand) { c.PaymentID = "" },
		func(c *VerifyPaymentCommand) { c.Signature = "" },
		func(c *VerifyPaymentCommand) { c.CourseID = "" },
		func(c *VerifyPaymentCommand) { c.UserID = "" },
		func(c *VerifyPaymentCommand) { c.CourseType = "" },
	}
	for i, clear := range fields {
		cmd := validCommand()
		clear(&cmd)
		_, err := uc.Execute(context.Background(), cmd)
		assert.True(t, apperrors.IsValidationError(err), "field %d", i)
	}
}

func TestVerifyPaymentReplayIsIdempotent(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)
	cmd := validCommand()

	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	// Gateways redeliver callbacks; the second delivery must acknowledge
	// without a second row.
	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "go-101", result.CourseID)
	assert.Equal(t, 1, entRepo.count())
}

func TestVerifyPaymentCourseVanishedAfterCheckout(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)

	cmd := validCommand()
	cmd.CourseID = "gone"
	cmd.Signature = sign(cmd.OrderID, cmd.PaymentID)

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Zero(t, entRepo.count())
}

func TestVerifyPaymentGrantFailureSurfacesPaymentID(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)
	entRepo.failing = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), validCommand())
	require.Error(t, err)
	assert.False(t, apperrors.IsVerificationFailedError(err))
	assert.Contains(t, err.Error(), "pay_456", "the user needs the payment ID to reach support")
}

func TestVerifyPaymentNotifiesOnSuccess(t *testing.T) {
	uc, _, _ := newVerifyFixture(t)
	notifier := newRecordingNotifier()
	uc.SetNotifier(notifier)

	_, err := uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)

	select {
	case n := <-notifier.verified:
		assert.Equal(t, "pay_456", n.PaymentID)
		assert.Equal(t, "Course go-101", n.CourseTitle)
		assert.Equal(t, int64(49900), n.Amount)
	case <-time.After(time.Second):
		t.Fatal("expected a verified-payment notification")
	}
}

func TestVerifyPaymentNotifiesOnGrantFailure(t *testing.T) {
	uc, entRepo, _ := newVerifyFixture(t)
	entRepo.failing = errors.New("connection reset")
	notifier := newRecordingNotifier()
	uc.SetNotifier(notifier)

	_, err := uc.Execute(context.Background(), validCommand())
	require.Error(t, err)

	select {
	case n := <-notifier.failed:
		assert.Equal(t, "pay_456", n.PaymentID)
		assert.Equal(t, "user-1", n.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected a grant-failed notification")
	}
}
