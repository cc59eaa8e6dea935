// Package email sends operator notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/gomail.v2"

	"gurukul/internal/application/checkout/usecases"
	"gurukul/internal/shared/config"
	"gurukul/internal/shared/logger"
)

// SMTPNotifier implements usecases.PaymentNotifier by mailing the support
// address on payment outcomes.
type SMTPNotifier struct {
	config  *config.EmailConfig
	dialer  *gomail.Dialer
	printer *message.Printer
	logger  logger.Interface
}

// NewSMTPNotifier creates a new SMTP payment notifier
func NewSMTPNotifier(cfg *config.EmailConfig, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPNotifier{
		config:  cfg,
		dialer:  dialer,
		printer: message.NewPrinter(language.English),
		logger:  log,
	}
}

// NotifyPaymentVerified reports a verified payment and successful grant
func (s *SMTPNotifier) NotifyPaymentVerified(ctx context.Context, n usecases.PaymentNotification) error {
	subject := fmt.Sprintf("Payment verified: %s", n.PaymentID)
	body := fmt.Sprintf(
		"Payment %s was verified and the entitlement was granted.\n\n"+
			"User:   %s\n"+
			"Course: %s (%s, %s)\n"+
			"Amount: %s\n",
		n.PaymentID, n.UserID, courseLabel(n), n.CourseID, n.CourseType, s.formatAmount(n.Amount))

	return s.send(ctx, subject, body)
}

// NotifyGrantFailed reports a verified payment whose grant failed. These need
// manual follow-up before the user contacts support.
func (s *SMTPNotifier) NotifyGrantFailed(ctx context.Context, n usecases.PaymentNotification) error {
	subject := fmt.Sprintf("ACTION REQUIRED: grant failed for payment %s", n.PaymentID)
	body := fmt.Sprintf(
		"Payment %s was verified but the entitlement grant failed.\n"+
			"The user was told to contact support with this payment ID.\n\n"+
			"User:   %s\n"+
			"Course: %s (%s, %s)\n"+
			"Amount: %s\n",
		n.PaymentID, n.UserID, courseLabel(n), n.CourseID, n.CourseType, s.formatAmount(n.Amount))

	return s.send(ctx, subject, body)
}

func (s *SMTPNotifier) send(ctx context.Context, subject, body string) error {
	if s.config.SMTPHost == "" {
		s.logger.Debugw("email not configured, skipping notification", "subject", subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", s.config.SupportAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

// formatAmount renders minor currency units as a grouped decimal, e.g. 12,999.00
func (s *SMTPNotifier) formatAmount(minorUnits int64) string {
	if minorUnits <= 0 {
		return "unknown"
	}
	return s.printer.Sprintf("%d.%02d", minorUnits/100, minorUnits%100)
}

func courseLabel(n usecases.PaymentNotification) string {
	if n.CourseTitle != "" {
		return n.CourseTitle
	}
	return "unknown title"
}
