package lifecycle

import (
	"strings"

	"github.com/zututors/zututors-backend/internal/domain"
)

// CreateRequestInput holds the parameters for opening a help request.
type CreateRequestInput struct {
	Subject     string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	var errs []domain.FieldError

	subject := strings.TrimSpace(i.Subject)
	if subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	}
	if len(subject) > 200 {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 200 characters"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AcceptRequestInput holds the parameters for accepting a request.
type AcceptRequestInput struct {
	RequestID int64
	TutorID   int64
}

// Validate checks all fields and collects all errors.
func (i AcceptRequestInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID <= 0 {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.TutorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tutor_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRequestsInput holds the parameters for listing open requests.
type ListRequestsInput struct {
	// StudentID, when non-nil, restricts the listing to that student's
	// own requests. Tutors list everything.
	StudentID *int64
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListRequestsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
