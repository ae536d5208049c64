package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PaynestHQ/paynest-mobile/utils"
)

type EmailService struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

func NewEmailService(apiKey, fromEmail string) *EmailService {
	return &EmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SendVerificationCode delivers a 6-digit code to the user. Without an API
// key (local development) the delivery is skipped and the event is logged
// with the code masked.
func (s *EmailService) SendVerificationCode(to, fullName, code string) error {
	if s.apiKey == "" {
		utils.SafeInfo("Email delivery disabled, verification code: %s for %s", code, to)
		return nil
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; }
        .code { font-size: 32px; letter-spacing: 8px; font-weight: bold; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Paynest</h1>
        </div>
        <div class="content">
            <p>Hi %s,</p>
            <p>Your verification code is:</p>
            <p class="code">%s</p>
            <p style="color: #e74c3c; margin-top: 30px;">This code expires as soon as a new one is requested.</p>
        </div>
    </div>
</body>
</html>
	`, fullName, code)

	payload := map[string]interface{}{
		"from":    fmt.Sprintf("Paynest <%s>", s.fromEmail),
		"to":      []string{to},
		"subject": "Your Paynest verification code",
		"html":    htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}

	return nil
}

// SendPasswordReset delivers a password-reset code
func (s *EmailService) SendPasswordReset(to, code string) error {
	if s.apiKey == "" {
		utils.SafeInfo("Email delivery disabled, reset code: %s for %s", code, to)
		return nil
	}

	payload := map[string]interface{}{
		"from":    fmt.Sprintf("Paynest <%s>", s.fromEmail),
		"to":      []string{to},
		"subject": "Reset your Paynest password",
		"html":    fmt.Sprintf("<p>Your password reset code is <strong>%s</strong>.</p>", code),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}

	return nil
}
