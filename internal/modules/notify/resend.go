package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// resendMailer delivers email through the Resend HTTP API.
// Resend API docs: https://resend.com/docs/api-reference/emails/send-email
type resendMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendMailer creates a Resend email adapter. An empty API key is
// allowed; Send then fails with a configuration error, which the dispatcher
// absorbs, so a missing key degrades to logged failures instead of crashing
// requests.
func NewResendMailer(apiKey string) Mailer {
	return &resendMailer{
		apiKey:  apiKey,
		baseURL: defaultResendBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *resendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if m.apiKey == "" {
		return "", fmt.Errorf("email service not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"from":    msg.From,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"text":    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode email response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Message != "" {
			return "", fmt.Errorf("email provider rejected request: %s", result.Message)
		}
		return "", fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return result.ID, nil
}
