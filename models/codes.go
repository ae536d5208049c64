package models

// ============================================================================
// ERROR CODES
// ============================================================================
// Stable machine-readable codes carried in the response envelope. The mobile
// client maps these to display text; the legacy substring matching on the
// message field only kicks in when a backend omits the code.

type ErrorCode string

const (
	CodeNone               ErrorCode = ""
	CodeNetwork            ErrorCode = "network_error"
	CodeValidation         ErrorCode = "validation_error"
	CodeInvalidCredentials ErrorCode = "invalid_credentials"
	CodeInvalidCode        ErrorCode = "invalid_code"
	CodeCodeExpired        ErrorCode = "code_expired"
	CodeDuplicateAccount   ErrorCode = "duplicate_account"
	CodeNotVerified        ErrorCode = "not_verified"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeNotFound           ErrorCode = "not_found"
	CodeServer             ErrorCode = "server_error"
	CodeUnknown            ErrorCode = "unknown_error"
)
