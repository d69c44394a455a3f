// Package thread implements conversation reading and messaging: listing a
// participant's conversations, assembling a full thread with resolved author
// names, and appending messages to an accepted conversation.
package thread

import (
	"context"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
)

type boardRepo interface {
	GetConversation(ctx context.Context, id int64) (*domain.Board, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*domain.Board, error)
	CreateMessage(ctx context.Context, b *domain.Board) (*domain.Board, error)
	ListConversationsByStudent(ctx context.Context, studentID int64) ([]*domain.ConversationSummary, error)
	ListConversationsByTutor(ctx context.Context, tutorID int64) ([]*domain.ConversationSummary, error)
}

type identityResolver interface {
	ResolveAll(ctx context.Context, ids []int64) (map[int64]domain.Identity, error)
}

// Service provides conversation and messaging operations.
type Service struct {
	boards     boardRepo
	identities identityResolver
	log        *slog.Logger
}

// NewService creates a new thread service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	identities identityResolver,
) *Service {
	return &Service{
		boards:     boards,
		identities: identities,
		log:        log.With("service", "thread"),
	}
}
