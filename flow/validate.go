package flow

import (
	"errors"
	"regexp"
)

var (
	ErrEmailRequired = errors.New("email address is required")
	ErrEmailInvalid  = errors.New("please enter a valid email address")
	ErrPhoneRequired = errors.New("phone number is required")
	ErrPhoneInvalid  = errors.New("please enter a valid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{8,15}$`)
	digitsOnly   = regexp.MustCompile(`^\d{6}$`)
)

// ValidateEmail checks the address format used at signup and login.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePhone checks a national number: digits only, 8 to 15 of them.
func ValidatePhone(phone string) error {
	if phone == "" {
		return ErrPhoneRequired
	}
	if !phonePattern.MatchString(phone) {
		return ErrPhoneInvalid
	}
	return nil
}

// ============================================================================
// PASSWORD RULES
// ============================================================================

// PasswordRequirement is one of the five rules shown as a checklist while the
// user types.
type PasswordRequirement struct {
	Text string
	Met  bool
}

var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// PasswordRequirements evaluates all five rules against the given password.
func PasswordRequirements(pwd string) []PasswordRequirement {
	return []PasswordRequirement{
		{Text: "8 to 32 characters", Met: len(pwd) >= 8 && len(pwd) <= 32},
		{Text: "At least one uppercase letter", Met: upperPattern.MatchString(pwd)},
		{Text: "At least one lowercase letter", Met: lowerPattern.MatchString(pwd)},
		{Text: "At least one number", Met: digitPattern.MatchString(pwd)},
		{Text: "At least one special character", Met: symbolPattern.MatchString(pwd)},
	}
}

// PasswordMeetsRequirements reports whether every rule passes.
func PasswordMeetsRequirements(pwd string) bool {
	for _, req := range PasswordRequirements(pwd) {
		if !req.Met {
			return false
		}
	}
	return true
}

// CanSubmitPassword mirrors the continue button: both fields non-empty, all
// rules met, and the confirmation matching.
func CanSubmitPassword(pwd, confirm string) bool {
	return pwd != "" && confirm != "" && pwd == confirm && PasswordMeetsRequirements(pwd)
}
