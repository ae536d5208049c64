package apiclient

import (
	"errors"
	"strings"

	"github.com/PaynestHQ/paynest-mobile/models"
)

// APIError is the single failure type surfaced by the client. Code is always
// populated, so display text can be chosen without inspecting the message.
type APIError struct {
	Code    models.ErrorCode
	Message string
	Status  int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// classify derives a structured code from a response. Backends built against
// this repo send the code on the wire; for older backends that only return a
// message, the legacy substring matching is kept as a fallback.
func classify(status int, code models.ErrorCode, message string) *APIError {
	if code == models.CodeNone {
		code = classifyMessage(message)
	}
	return &APIError{Code: code, Message: message, Status: status}
}

func classifyMessage(message string) models.ErrorCode {
	switch {
	case strings.Contains(message, "Network request failed"):
		return models.CodeNetwork
	case strings.Contains(message, "Invalid code"):
		return models.CodeInvalidCode
	case strings.Contains(message, "Code expired"):
		return models.CodeCodeExpired
	case strings.Contains(message, "already exists"):
		return models.CodeDuplicateAccount
	default:
		return models.CodeUnknown
	}
}

// displayMessages is a total map over the error codes: every code has a
// readable one-liner, so no failure ever reaches the user as raw text.
var displayMessages = map[models.ErrorCode]string{
	models.CodeNetwork:            "Cannot connect to server. Please check your internet connection.",
	models.CodeInvalidCode:        "Invalid verification code. Please try again.",
	models.CodeCodeExpired:        "Verification code has expired. Please request a new one.",
	models.CodeDuplicateAccount:   "An account with this email or phone number already exists",
	models.CodeInvalidCredentials: "Invalid email or password. Please try again.",
	models.CodeNotVerified:        "Please verify your email before logging in.",
	models.CodeUnauthorized:       "Your session has expired. Please log in again.",
	models.CodeNotFound:           "Missing user information. Please try again.",
	models.CodeValidation:         "Please check your input and try again.",
	models.CodeServer:             "Something went wrong on our side. Please try again.",
	models.CodeUnknown:            "Something went wrong. Please try again.",
}

// DisplayMessage converts any error into the one- or two-sentence text the
// app shows in its snackbar. Never returns a stack trace or a raw code.
func DisplayMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := displayMessages[apiErr.Code]; ok {
			return msg
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return displayMessages[models.CodeUnknown]
}
