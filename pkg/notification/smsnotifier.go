package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const philSMSEndpoint = "https://app.philsms.com/api/v3/sms/send"

type PhilSMSConfig struct {
	APIToken string
	SenderID string // max 11 chars
	Endpoint string // overridable for tests
}

// SMSNotifier delivers notices through the PhilSMS REST API.
type SMSNotifier struct {
	config PhilSMSConfig
	client *http.Client
}

func NewSMSNotifier(config PhilSMSConfig) *SMSNotifier {
	if config.Endpoint == "" {
		config.Endpoint = philSMSEndpoint
	}
	return &SMSNotifier{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type philSMSRequest struct {
	Recipient string `json:"recipient"`
	SenderID  string `json:"sender_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

func (s *SMSNotifier) Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error {
	if notification.To == "" {
		return fmt.Errorf("SMS notification requires 'To' number")
	}

	message := notification.Body
	if message == "" {
		rendered, err := renderTemplate("sms", template.Text, notification.Data)
		if err != nil {
			return err
		}
		message = rendered
	}
	if message == "" {
		return fmt.Errorf("SMS notification requires a message body")
	}

	payload, err := json.Marshal(philSMSRequest{
		Recipient: notification.To,
		SenderID:  s.config.SenderID,
		Type:      "plain",
		Message:   message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("Failed to call PhilSMS", "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("PhilSMS rejected message", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("philsms send failed with status %d", resp.StatusCode)
	}

	slog.Info("SMS sent successfully", "to", notification.To)
	return nil
}
