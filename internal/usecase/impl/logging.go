package impl

import (
	"context"
	"log/slog"

	deliverycontext "tnp/internal/delivery/context"
)

// requestLogger returns the request-scoped logger, tagged with the caller when the request is authenticated.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger := deliverycontext.GetLoggerOrDefault(ctx, fallback)
	if identity, ok := deliverycontext.IdentityFromContext(ctx); ok {
		logger = logger.With(
			slog.String("callerID", identity.ID.String()),
			slog.String("callerRole", string(identity.Role)),
		)
	}

	return logger
}
