package thread

import (
	"context"
	"fmt"

	"github.com/zututors/zututors-backend/internal/domain"
)

// LoadThread assembles a conversation's full history: the accepted request
// first, then every message in posting order, each with its author resolved
// to a display identity. A conversation id that matches nothing yields an
// empty thread rather than an error, so a just-declined id renders as a
// blank page instead of a failure.
func (s *Service) LoadThread(ctx context.Context, conversationID int64) ([]*domain.ThreadEntry, error) {
	if conversationID <= 0 {
		return nil, domain.NewValidationError("conversation_id", "required")
	}

	conv, err := s.boards.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load conversation %d: %w", conversationID, err)
	}
	if conv == nil {
		return []*domain.ThreadEntry{}, nil
	}

	messages, err := s.boards.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages of conversation %d: %w", conversationID, err)
	}

	ids := make([]int64, 0, len(messages)+1)
	ids = append(ids, conv.AuthorID)
	for _, m := range messages {
		ids = append(ids, m.AuthorID)
	}

	authors, err := s.identities.ResolveAll(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve thread authors: %w", err)
	}

	entries := make([]*domain.ThreadEntry, 0, len(messages)+1)
	entries = append(entries, &domain.ThreadEntry{
		BoardID:   conv.ID,
		Author:    authorOrUnknown(authors, conv.AuthorID),
		Content:   conv.Content,
		CreatedAt: conv.CreatedAt,
		Starter:   true,
	})
	for _, m := range messages {
		entries = append(entries, &domain.ThreadEntry{
			BoardID:   m.ID,
			Author:    authorOrUnknown(authors, m.AuthorID),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return entries, nil
}

func authorOrUnknown(authors map[int64]domain.Identity, id int64) domain.Identity {
	if ident, ok := authors[id]; ok {
		return ident
	}
	return domain.UnknownIdentity(id)
}
