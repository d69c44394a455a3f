package domain

import (
	"strings"
	"time"
)

// messageTitle is the fixed title written for message rows; only requests
// and conversations carry a meaningful subject.
const messageTitle = "message"

// Board is the polymorphic lifecycle record: a help request, an accepted
// conversation, or a single message, disambiguated by Role. Which optional
// fields are meaningful depends on the role:
//
//   - request:      AuthorID references a student; TutorID and ParentID absent.
//   - conversation: TutorID references the accepting tutor; ParentID absent.
//   - message:      ParentID references a conversation; AuthorID is either
//     participant; TutorID unused.
//
// Boards are only built through the role constructors below, which enforce
// the per-role field sets. A conversation is never constructed in Go at
// all: it exists only as the result of a successful accept transition.
type Board struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	TutorID   *int64
	ParentID  *int64
	Role      BoardRole
	CreatedAt time.Time
}

// NewHelpRequest builds a request-role board for a student. Subject and
// description must be non-blank.
func NewHelpRequest(studentID int64, subject, description string) (*Board, error) {
	var errs []FieldError

	subject = strings.TrimSpace(subject)
	if subject == "" {
		errs = append(errs, FieldError{Field: "subject", Message: "required"})
	}
	description = strings.TrimSpace(description)
	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "required"})
	}
	if studentID <= 0 {
		errs = append(errs, FieldError{Field: "student_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &Board{
		Title:    subject,
		Content:  description,
		AuthorID: studentID,
		Role:     RoleRequest,
	}, nil
}

// NewMessage builds a message-role board inside a conversation. Text must
// contain at least one non-whitespace character; leading and trailing
// whitespace is stripped before persistence.
func NewMessage(conversationID, authorID int64, text string) (*Board, error) {
	var errs []FieldError

	text = strings.TrimSpace(text)
	if text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "required"})
	}
	if conversationID <= 0 {
		errs = append(errs, FieldError{Field: "conversation_id", Message: "required"})
	}
	if authorID <= 0 {
		errs = append(errs, FieldError{Field: "author_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	parent := conversationID
	return &Board{
		Title:    messageTitle,
		Content:  text,
		AuthorID: authorID,
		ParentID: &parent,
		Role:     RoleMessage,
	}, nil
}

// IsRequest reports whether the board is still an open help request.
func (b *Board) IsRequest() bool { return b.Role == RoleRequest }

// IsConversation reports whether the board is an accepted conversation.
func (b *Board) IsConversation() bool { return b.Role == RoleConversation }

// ConversationSummary is one row of a participant's conversation list.
// Counterpart is the resolved display name of the other participant.
type ConversationSummary struct {
	ID          int64
	Title       string
	Content     string
	Counterpart string
	CreatedAt   time.Time
}

// PendingRequest is one row of the tutor-facing help request inbox.
type PendingRequest struct {
	ID          int64
	StudentID   int64
	StudentName string
	Subject     string
	Description string
	CreatedAt   time.Time
}

// ThreadEntry is one item of an assembled conversation transcript: either
// the synthetic starter (the original request content) or a message.
type ThreadEntry struct {
	BoardID   int64
	Author    Identity
	Content   string
	CreatedAt time.Time
	Starter   bool
}
