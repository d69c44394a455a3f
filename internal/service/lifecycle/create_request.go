package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

// CreateRequest opens a new help request for the calling student.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.Board, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if caller.Kind != domain.KindStudent {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := domain.NewHelpRequest(caller.ID, input.Subject, input.Description)
	if err != nil {
		return nil, err
	}

	created, err := s.boards.CreateRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create help request: %w", err)
	}

	s.log.InfoContext(ctx, "help request created",
		slog.Int64("request_id", created.ID),
		slog.Int64("student_id", caller.ID),
		slog.String("subject", created.Title),
	)

	return created, nil
}
