package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/middleware"
	"github.com/invomate/invomate_app/internal/platform/config"
)

// SMTPSender delivers transactional mail over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ portssvc.EmailSenderSvc = (*SMTPSender)(nil)

// NewSMTPSender creates a sender from the SMTP configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendOTPEmail delivers the password-reset OTP. The code expires 15 minutes
// after it was issued.
func (s *SMTPSender) SendOTPEmail(ctx context.Context, toEmail string, name string, otp string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your password reset code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Your password reset code is <b>%s</b>. It expires in 15 minutes.</p><p>If you did not request a reset, you can ignore this email.</p>",
		name, otp,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.Error("failed to send OTP email", "to", toEmail, "error", err)
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Info("OTP email sent", "to", toEmail)
	return nil
}
