// Package lifecycle implements the request-to-conversation transition
// engine: students open help requests, tutors accept or decline them, and
// an accepted request becomes a conversation.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	"github.com/zututors/zututors-backend/internal/domain"
)

type boardRepo interface {
	CreateRequest(ctx context.Context, b *domain.Board) (*domain.Board, error)
	Transition(ctx context.Context, id int64, from, to domain.BoardRole, tutorID int64) (bool, error)
	DeleteIfRole(ctx context.Context, id int64, role domain.BoardRole) (bool, error)
	ListPendingRequests(ctx context.Context, f board.RequestFilter) ([]*domain.PendingRequest, error)
}

// Service provides help-request lifecycle operations.
type Service struct {
	boards boardRepo
	log    *slog.Logger
}

// NewService creates a new lifecycle service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
) *Service {
	return &Service{
		boards: boards,
		log:    log.With("service", "lifecycle"),
	}
}
