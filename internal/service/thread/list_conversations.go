package thread

import (
	"context"
	"fmt"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

// ListConversations returns the caller's conversations, newest first, each
// with the counterpart's display name already joined in.
func (s *Service) ListConversations(ctx context.Context) ([]*domain.ConversationSummary, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		summaries []*domain.ConversationSummary
		err       error
	)
	switch caller.Kind {
	case domain.KindStudent:
		summaries, err = s.boards.ListConversationsByStudent(ctx, caller.ID)
	case domain.KindTutor:
		summaries, err = s.boards.ListConversationsByTutor(ctx, caller.ID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return summaries, nil
}
