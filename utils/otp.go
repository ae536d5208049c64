package utils

import (
	"crypto/rand"
	"encoding/base32"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

// Verification codes are 6-digit HOTP values bound to a per-user secret and
// counter. Resending a code advances the counter, which expires the previous
// one without any server-side timer.

var codeOpts = hotp.ValidateOpts{
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// GenerateCodeSecret creates a new base32 HOTP secret for a user
func GenerateCodeSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base32.StdEncoding.EncodeToString(buf), nil
}

// GenerateVerificationCode derives the 6-digit code for the given counter
func GenerateVerificationCode(secret string, counter uint64) (string, error) {
	return hotp.GenerateCodeCustom(secret, counter, codeOpts)
}

// ValidateVerificationCode checks a submitted code against the current counter
func ValidateVerificationCode(code, secret string, counter uint64) (bool, error) {
	return hotp.ValidateCustom(code, counter, secret, codeOpts)
}

// WasPreviousCode reports whether the code matched an earlier counter value,
// i.e. the user typed a code that has since been superseded by a resend.
func WasPreviousCode(code, secret string, counter uint64) bool {
	for c := uint64(0); c < counter; c++ {
		if ok, _ := hotp.ValidateCustom(code, c, secret, codeOpts); ok {
			return true
		}
	}
	return false
}
