package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Legacy — шлюз FCM legacy HTTP с авторизацией по server key.
type Legacy struct {
	url    string
	key    string
	client *http.Client
}

// NewLegacy создаёт legacy-шлюз.
func NewLegacy(serverKey, url string, timeout time.Duration) *Legacy {
	return &Legacy{
		url:    url,
		key:    serverKey,
		client: &http.Client{Timeout: timeout},
	}
}

type legacyNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type legacyRequest struct {
	To           string             `json:"to"`
	Priority     string             `json:"priority"`
	Notification legacyNotification `json:"notification"`
	Data         map[string]string  `json:"data"`
}

type legacyResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

// Send отправляет сообщение на токен. Ошибка берётся из results[0].error,
// ответ не 200 даёт код http_<status>.
func (l *Legacy) Send(ctx context.Context, token string, msg Message) error {
	const op = "push.legacy.Send"

	body, err := json.Marshal(legacyRequest{
		To:           token,
		Priority:     "high",
		Notification: legacyNotification{Title: msg.title(), Body: msg.Body},
		Data:         StringifyData(msg.Data),
	})
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "key="+l.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DeliveryError{Code: fmt.Sprintf("http_%d", resp.StatusCode)}
	}

	var lr legacyResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}

	if len(lr.Results) == 0 {
		if lr.Failure == 0 {
			return nil
		}

		return &DeliveryError{Code: "failure"}
	}

	if code := lr.Results[0].Error; code != "" {
		return &DeliveryError{Code: code}
	}

	return nil
}

var _ Sender = (*Legacy)(nil)
