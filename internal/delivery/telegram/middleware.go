package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed or panicking handler and tells the user
// something went wrong. The update loop never sees the error.
func (h *Handler) withErrorHandling(name string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("handler panicked",
					zap.String("handler", name),
					zap.Int64("chat_id", chatID),
					zap.Any("panic", r),
				)
				h.sendError(chatID, msgInternalError)
			}
		}()

		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.String("handler", name),
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
