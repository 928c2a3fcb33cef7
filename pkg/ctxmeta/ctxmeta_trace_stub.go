//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трассировки нет — возвращаем пустые значения.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
