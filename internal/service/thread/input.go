package thread

import (
	"strings"

	"github.com/zututors/zututors-backend/internal/domain"
)

// AppendMessageInput holds the parameters for posting into a conversation.
type AppendMessageInput struct {
	ConversationID int64
	Text           string
}

// Validate checks all fields and collects all errors.
func (i AppendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.ConversationID <= 0 {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 5000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
