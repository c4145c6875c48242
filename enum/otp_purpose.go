package enum

type OTPPurpose string

const (
	OTPPurposeSignup        OTPPurpose = "signup"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

func (p OTPPurpose) IsValid() bool {
	return p == OTPPurposeSignup || p == OTPPurposePasswordReset
}
