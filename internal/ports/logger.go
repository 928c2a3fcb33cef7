package ports

import "context"

// Logger — минимальный контракт логгера: ядро не зависит от zap напрямую.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
