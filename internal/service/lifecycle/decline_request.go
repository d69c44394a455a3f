package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
)

// DeclineRequest atomically deletes an open request. A zero affected-row
// count: whether the id never existed, was declined earlier, or was
// already accepted into a conversation, it reports OutcomeAlreadyProcessed,
// never ErrNotFound: decline is defined purely by the conditional delete.
func (s *Service) DeclineRequest(ctx context.Context, requestID int64) (domain.TransitionOutcome, error) {
	if requestID <= 0 {
		return "", domain.NewValidationError("request_id", "required")
	}

	deleted, err := s.boards.DeleteIfRole(ctx, requestID, domain.RoleRequest)
	if err != nil {
		return "", fmt.Errorf("decline request: %w", err)
	}

	if !deleted {
		return domain.OutcomeAlreadyProcessed, nil
	}

	s.log.InfoContext(ctx, "help request declined",
		slog.Int64("request_id", requestID),
	)

	return domain.OutcomeDeclined, nil
}
