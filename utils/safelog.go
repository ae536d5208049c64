// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masks sensitive data in production
// ============================================================================
// Logging helpers that automatically mask personal and financial information
// (emails, phone numbers, card numbers, user IDs) when running in production.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction decides whether sensitive data gets masked.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel filters log output (DEBUG, INFO, WARN, ERROR)
	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// ============================================================================
// MASKING PATTERNS
// ============================================================================

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Card numbers in the common 4x4 groupings
	cardRegex = regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)

	// Phone numbers with country prefix
	phoneRegex = regexp.MustCompile(`\+\d{1,3}[\s.-]?\d{6,14}`)

	// Full UUIDs (user IDs)
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	// 6-digit verification codes following the word "code"
	codeRegex = regexp.MustCompile(`(?i)(code[:\s]+)\d{6}\b`)
)

// ============================================================================
// MASKING FUNCTIONS
// ============================================================================

// MaskString masks sensitive data inside an arbitrary string
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := input

	result = emailRegex.ReplaceAllString(result, "***@***.***")
	result = cardRegex.ReplaceAllString(result, "****-****-****-****")
	result = phoneRegex.ReplaceAllString(result, "+**********")
	result = codeRegex.ReplaceAllString(result, "${1}******")

	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		if len(id) > 8 {
			return id[:8] + "..."
		}
		return "***"
	})

	return result
}

// MaskID partially masks an ID (keeps the first 8 characters)
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// MaskEmail masks an email address
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// MaskContact masks an email or phone number the way the app displays it:
// emails keep the first two characters and the domain, phones keep the last
// four digits. Unlike the other maskers this applies in every environment,
// because the result is shown to users.
func MaskContact(contact string) string {
	if at := strings.Index(contact, "@"); at >= 0 {
		local, domain := contact[:at], contact[at+1:]
		keep := 2
		if len(local) < keep {
			keep = len(local)
		}
		hidden := len(local) - keep
		if hidden < 1 {
			hidden = 1
		}
		return local[:keep] + strings.Repeat("•", hidden) + "@" + domain
	}
	if len(contact) <= 4 {
		return "•" + contact
	}
	return strings.Repeat("•", len(contact)-4) + contact[len(contact)-4:]
}

// ============================================================================
// SAFE LOGGING FUNCTIONS
// ============================================================================

// SafeLog logs a message with sensitive data masked
func SafeLog(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Print(MaskString(message))
}

// SafeDebug logs a debug message (only when LOG_LEVEL=DEBUG)
func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[DEBUG] %s", MaskString(message))
}

// SafeInfo logs an informational message
func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[INFO] %s", MaskString(message))
}

// SafeWarn logs a warning
func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Printf("[WARN] %s", MaskString(message))
}

// SafeError logs an error message
func SafeError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[ERROR] %s", MaskString(message))
}

// ============================================================================
// DOMAIN-SPECIFIC LOGGING
// ============================================================================

// LogAuthAction logs an authentication event without leaking the email
func LogAuthAction(action string, email string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}

	if IsProduction {
		log.Printf("[Auth] %s - Email: %s Status: %s", action, MaskEmail(email), status)
	} else {
		log.Printf("[Auth] %s - Email: %s Status: %s", action, email, status)
	}
}

// LogVerification logs a verification-code event (the code itself is never logged)
func LogVerification(action string, userID string, channel string) {
	log.Printf("[Verify] %s - User: %s Channel: %s", action, MaskID(userID), channel)
}

// LogAPIRequest logs an API request without sensitive path segments
func LogAPIRequest(method string, path string, userID string, statusCode int, duration string) {
	if IsProduction {
		maskedPath := uuidRegex.ReplaceAllStringFunc(path, func(id string) string {
			if len(id) > 8 {
				return id[:8] + "..."
			}
			return "***"
		})
		log.Printf("[API] %s %s - User: %s Status: %d Duration: %s",
			method, maskedPath, MaskID(userID), statusCode, duration)
	} else {
		log.Printf("[API] %s %s - User: %s Status: %d Duration: %s",
			method, path, userID, statusCode, duration)
	}
}

// LogWebSocket logs a notification-channel event
func LogWebSocket(action string, userID string) {
	log.Printf("[WS] %s - User: %s", action, MaskID(userID))
}

// ============================================================================
// UTILITIES
// ============================================================================

// GetEnvMode returns the current environment mode
func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

// LogStartup logs application startup information
func LogStartup(appName string, version string, port string) {
	log.Printf("🚀 %s v%s starting...", appName, version)
	log.Printf("   Mode: %s", GetEnvMode())
	log.Printf("   Port: %s", port)
	log.Printf("   Log Level: %d", LogLevel)
	if IsProduction {
		log.Printf("   ⚠️  Production mode: Sensitive data will be masked in logs")
	}
}
