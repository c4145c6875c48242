package mail

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"campus-trade-api/config/common"
	"campus-trade-api/enum"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewSMTPMailer(config *common.Config, log *logrus.Logger) *SMTPMailer {
	host, port, username, password, from := config.GetSMTPConfig()
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

func (m *SMTPMailer) SendOTP(to, code string, purpose enum.OTPPurpose) error {
	subject := "Verify Your CampusTrade Account"
	if purpose == enum.OTPPurposePasswordReset {
		subject = "Reset Your CampusTrade Password"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", otpBody(code, purpose))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.WithError(err).Errorf("Failed to send %s OTP email to %s", purpose, to)
		return err
	}
	m.log.Infof("Sent %s OTP email to %s", purpose, to)
	return nil
}

func otpBody(code string, purpose enum.OTPPurpose) string {
	title := "Verify Your Account"
	message := "Thank you for signing up for CampusTrade! Please use the verification code below to complete your registration:"
	if purpose == enum.OTPPurposePasswordReset {
		title = "Reset Your Password"
		message = "You requested to reset your password. Please use the code below to proceed:"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>CampusTrade</h1>
  <h2>%s</h2>
  <p>%s</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
  <p>This code will expire in 10 minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
  <p style="font-size: 12px; color: #999;">&copy; %d CampusTrade. Campus Student Marketplace.</p>
</body>
</html>`, title, message, code, time.Now().Year())
}
