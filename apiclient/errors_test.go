package apiclient

import (
	"errors"
	"testing"

	"github.com/PaynestHQ/paynest-mobile/models"
)

func TestClassifyPrefersStructuredCode(t *testing.T) {
	err := classify(400, models.CodeInvalidCredentials, "Invalid code")
	if err.Code != models.CodeInvalidCredentials {
		t.Errorf("Code = %q, want the wire code over the message match", err.Code)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
}

func TestClassifyFallsBackToMessageMatching(t *testing.T) {
	tests := []struct {
		message string
		want    models.ErrorCode
	}{
		{"Network request failed", models.CodeNetwork},
		{"Invalid code", models.CodeInvalidCode},
		{"Code expired", models.CodeCodeExpired},
		{"An account with this email already exists", models.CodeDuplicateAccount},
		{"something nobody anticipated", models.CodeUnknown},
		{"", models.CodeUnknown},
	}

	for _, tt := range tests {
		if got := classify(400, models.CodeNone, tt.message); got.Code != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.message, got.Code, tt.want)
		}
	}
}

func TestDisplayMessageIsTotal(t *testing.T) {
	codes := []models.ErrorCode{
		models.CodeNetwork,
		models.CodeValidation,
		models.CodeInvalidCredentials,
		models.CodeInvalidCode,
		models.CodeCodeExpired,
		models.CodeDuplicateAccount,
		models.CodeNotVerified,
		models.CodeUnauthorized,
		models.CodeNotFound,
		models.CodeServer,
		models.CodeUnknown,
	}

	for _, code := range codes {
		msg := DisplayMessage(&APIError{Code: code})
		if msg == "" {
			t.Errorf("code %q has no display message", code)
		}
	}
}

func TestDisplayMessageForArbitraryErrors(t *testing.T) {
	if msg := DisplayMessage(errors.New("dial tcp: i/o timeout")); msg != "Something went wrong. Please try again." {
		t.Errorf("plain error = %q, want the generic text", msg)
	}
	if msg := DisplayMessage(nil); msg == "" {
		t.Error("nil error must still produce text")
	}

	// An unmapped code with its own message passes the message through.
	err := &APIError{Code: models.ErrorCode("mystery"), Message: "Teapot refused"}
	if msg := DisplayMessage(err); msg != "Teapot refused" {
		t.Errorf("unmapped code = %q, want its message", msg)
	}
}

func TestAPIErrorErrorString(t *testing.T) {
	err := &APIError{Code: models.CodeNetwork, Message: "Network request failed"}
	if err.Error() != "Network request failed" {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := &APIError{Code: models.CodeServer}
	if bare.Error() != "server_error" {
		t.Errorf("Error() without message = %q, want the code", bare.Error())
	}
}
