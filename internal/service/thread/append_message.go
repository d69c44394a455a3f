package thread

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

// AppendMessage posts a message into an accepted conversation on behalf of
// the caller. The parent must be a conversation: posting into an open
// request, a message, or a missing id returns domain.ErrNotFound.
func (s *Service) AppendMessage(ctx context.Context, input AppendMessageInput) (*domain.Board, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	msg, err := domain.NewMessage(input.ConversationID, caller.ID, input.Text)
	if err != nil {
		return nil, err
	}

	created, err := s.boards.CreateMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("append message to conversation %d: %w", input.ConversationID, err)
	}

	s.log.InfoContext(ctx, "message appended",
		slog.Int64("message_id", created.ID),
		slog.Int64("conversation_id", input.ConversationID),
		slog.Int64("author_id", caller.ID),
	)

	return created, nil
}
