// log хранит в context.Context логгер текущей операции: запроса API
// (с request_id и user_id) или прохода фонового воркера (с именем воркера).
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст, в котором From отдаёт l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From возвращает логгер операции. Вне запроса и воркера, а также для
// положенного nil, используется slog.Default(), настроенный в main.
func From(ctx context.Context) *slog.Logger {
	l, _ := ctx.Value(ctxKey{}).(*slog.Logger)
	if l == nil {
		return slog.Default()
	}

	return l
}

// With добавляет атрибуты ко всем последующим записям операции,
// например user_id после проверки access-токена.
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}

	return Into(ctx, From(ctx).With(args...))
}
