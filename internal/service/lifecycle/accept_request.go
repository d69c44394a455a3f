package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
)

// AcceptRequest atomically turns an open request into a conversation owned
// by the given tutor. The conditional write's affected-row count is the only
// correctness oracle: no read precedes it, so among any number of tutors
// racing on the same request exactly one gets OutcomeAccepted and the rest
// get OutcomeAlreadyProcessed. Repeating the call after success is safe and
// also reports OutcomeAlreadyProcessed.
func (s *Service) AcceptRequest(ctx context.Context, input AcceptRequestInput) (domain.TransitionOutcome, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	won, err := s.boards.Transition(ctx,
		input.RequestID, domain.RoleRequest, domain.RoleConversation, input.TutorID)
	if err != nil {
		return "", fmt.Errorf("accept request: %w", err)
	}

	if !won {
		s.log.InfoContext(ctx, "accept lost to an earlier transition",
			slog.Int64("request_id", input.RequestID),
			slog.Int64("tutor_id", input.TutorID),
		)
		return domain.OutcomeAlreadyProcessed, nil
	}

	s.log.InfoContext(ctx, "help request accepted",
		slog.Int64("request_id", input.RequestID),
		slog.Int64("tutor_id", input.TutorID),
	)

	return domain.OutcomeAccepted, nil
}
