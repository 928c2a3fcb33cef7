// Пакет ctxmeta — метаданные запроса в context.Context (request_id,
// trace_id). Общая точка для HTTP-слоя и логгера: они зависят от этого
// пакета, но не друг от друга.
package ctxmeta

import "context"

// ctxKey — неэкспортируемый тип ключа, защита от коллизий с чужими значениями.
type ctxKey string

const KeyRequestID ctxKey = "request_id"

// WithRequestID — положить request_id в контекст; пустой id игнорируется.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — достать request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
