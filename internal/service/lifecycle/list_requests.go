package lifecycle

import (
	"context"
	"fmt"

	"github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	"github.com/zututors/zututors-backend/internal/domain"
	"github.com/zututors/zututors-backend/pkg/ctxutil"
)

// ListRequests returns open help requests with resolved student names.
// Tutors see every open request (their inbox); students see only their own.
func (s *Service) ListRequests(ctx context.Context, input ListRequestsInput) ([]*domain.PendingRequest, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := board.RequestFilter{
		StudentID: input.StudentID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}
	if caller.Kind == domain.KindStudent {
		// Students may only list their own requests.
		filter.StudentID = &caller.ID
	}

	requests, err := s.boards.ListPendingRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list help requests: %w", err)
	}

	return requests, nil
}
