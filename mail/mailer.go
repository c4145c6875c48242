package mail

import "campus-trade-api/enum"

// Mailer dispatches one-time codes. The ten-minute validity window is
// enforced by the caller, not here.
type Mailer interface {
	SendOTP(to, code string, purpose enum.OTPPurpose) error
}
