// push доставляет уведомления на устройства через Firebase Cloud Messaging.
//
// Поддерживаются два шлюза: HTTP v1 с service account (OAuth2 bearer)
// и legacy-протокол с server key. Выбор делает NewSender по конфигурации.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/ab-planner/internal/config"
	"github.com/pribylovaa/ab-planner/internal/pkg/log"
)

//go:generate mockgen -source=push.go -destination=../../mocks/mock_push.go -package=mocks

// DefaultTitle подставляется, если заголовок уведомления пуст.
const DefaultTitle = "Notification"

// Message — содержимое одного push-сообщения.
type Message struct {
	Title string
	Body  string
	Data  map[string]any
}

func (m Message) title() string {
	if m.Title == "" {
		return DefaultTitle
	}

	return m.Title
}

// Sender отправляет сообщение на один токен устройства.
// Отказ шлюза возвращается как *DeliveryError, любая другая ошибка транспортная.
type Sender interface {
	Send(ctx context.Context, token string, msg Message) error
}

// DeliveryError — шлюз принял запрос и отказал в доставке.
type DeliveryError struct {
	Code string
}

func (e *DeliveryError) Error() string {
	return "push: delivery rejected: " + e.Code
}

// IsUnregistered сообщает, что токен больше недействителен и его нужно удалить.
func IsUnregistered(err error) bool {
	var de *DeliveryError
	if !errors.As(err, &de) {
		return false
	}

	switch de.Code {
	case "NotRegistered", "InvalidRegistration", "UNREGISTERED":
		return true
	}

	return false
}

// ErrorCode возвращает код для last_error: код шлюза либо текст ошибки.
func ErrorCode(err error) string {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Code
	}

	return err.Error()
}

// StringifyData приводит data к map[string]string, как требует FCM.
// nil пропускается, map/slice кодируются в компактный JSON, time.Time в RFC 3339.
func StringifyData(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))

	for k, v := range data {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case time.Time:
			out[k] = val.Format(time.RFC3339)
		case *time.Time:
			if val == nil {
				continue
			}
			out[k] = val.Format(time.RFC3339)
		case map[string]any, []any, map[string]string, []string, []int64:
			b, err := json.Marshal(val)
			if err != nil {
				out[k] = fmt.Sprint(val)
				continue
			}
			out[k] = string(b)
		default:
			out[k] = fmt.Sprint(val)
		}
	}

	return out
}

// NewSender выбирает шлюз: HTTP v1 при заданном service account, legacy при server key.
// Без учётных данных возвращает (nil, nil): отправка отключена.
// Если service account не читается, но есть server key, используется legacy.
func NewSender(ctx context.Context, cfg config.PushConfig) (Sender, error) {
	const op = "push.NewSender"

	if cfg.ServiceAccountJSON != "" || cfg.ServiceAccountFile != "" {
		sender, err := newFCMFromConfig(cfg)
		if err == nil {
			return sender, nil
		}

		if cfg.ServerKey == "" {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.From(ctx).Warn("fcm_v1_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	if cfg.ServerKey != "" {
		return NewLegacy(cfg.ServerKey, cfg.LegacyURL, cfg.Timeout), nil
	}

	return nil, nil
}

func newFCMFromConfig(cfg config.PushConfig) (*FCM, error) {
	sa, err := LoadServiceAccount(cfg.ServiceAccountJSON, cfg.ServiceAccountFile)
	if err != nil {
		return nil, err
	}

	return NewFCM(sa, FCMOptions{
		ProjectID: cfg.ProjectID,
		BaseURL:   cfg.V1BaseURL,
		TokenURL:  cfg.TokenURL,
		Timeout:   cfg.Timeout,
	})
}
