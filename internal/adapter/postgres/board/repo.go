// Package board implements the lifecycle store using PostgreSQL: one
// polymorphic boards table holding help requests, conversations, and
// messages, disambiguated by a role column.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zututors/zututors-backend/internal/adapter/postgres"
	"github.com/zututors/zututors-backend/internal/domain"
)

// Repo provides board persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new board repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createRequestSQL = `
INSERT INTO boards (title, content, author_id, role)
VALUES ($1, $2, $3, 'request')
RETURNING id, created_at`

// CreateRequest inserts a new request-role board and returns it with its
// assigned id and created_at.
func (r *Repo) CreateRequest(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	row := r.pool.QueryRow(ctx, createRequestSQL, b.Title, b.Content, b.AuthorID)

	created := *b
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "board", 0)
	}

	return &created, nil
}

const transitionSQL = `
UPDATE boards
SET role = $1, tutor_id = $2
WHERE id = $3 AND role = $4`

// Transition atomically moves a board from one role to another, setting the
// tutor on the way. The predicate on the current role is evaluated in the
// same statement that mutates the row, so among any number of concurrent
// callers exactly one observes true. A false return means the precondition
// no longer held; no separate existence check is made.
func (r *Repo) Transition(ctx context.Context, id int64, from, to domain.BoardRole, tutorID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, transitionSQL, string(to), tutorID, id, string(from))
	if err != nil {
		return false, postgres.MapError(err, "board", id)
	}

	return tag.RowsAffected() > 0, nil
}

const deleteIfRoleSQL = `DELETE FROM boards WHERE id = $1 AND role = $2`

// DeleteIfRole atomically deletes a board conditioned on its current role.
// The affected-row count is the only oracle: false covers both a missing id
// and a board that has already left the given role.
func (r *Repo) DeleteIfRole(ctx context.Context, id int64, role domain.BoardRole) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteIfRoleSQL, id, string(role))
	if err != nil {
		return false, postgres.MapError(err, "board", id)
	}

	return tag.RowsAffected() > 0, nil
}

// createMessageSQL inserts a message only if the parent row exists and is a
// conversation, in one statement. A request or another message can never
// become a parent.
const createMessageSQL = `
INSERT INTO boards (title, content, author_id, role, parent_id)
SELECT $1, $2, $3, 'message', b.id
FROM boards b
WHERE b.id = $4 AND b.role = 'conversation'
RETURNING id, created_at`

// CreateMessage appends a message-role board to a conversation. Returns
// domain.ErrNotFound if the parent does not exist or is not a conversation.
func (r *Repo) CreateMessage(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if b.ParentID == nil {
		return nil, domain.NewValidationError("conversation_id", "required")
	}

	row := r.pool.QueryRow(ctx, createMessageSQL, b.Title, b.Content, b.AuthorID, *b.ParentID)

	created := *b
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "conversation", *b.ParentID)
	}

	return &created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getConversationSQL = `
SELECT id, title, content, author_id, tutor_id, parent_id, role, created_at
FROM boards
WHERE id = $1 AND role = 'conversation'`

// GetConversation returns a conversation-role board by id, or (nil, nil) if
// no such conversation exists. The soft miss lets thread loads degrade to
// an empty transcript instead of an error.
func (r *Repo) GetConversation(ctx context.Context, id int64) (*domain.Board, error) {
	var b domain.Board
	err := r.pool.QueryRow(ctx, getConversationSQL, id).Scan(
		&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.TutorID, &b.ParentID, &b.Role, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "conversation", id)
	}

	return &b, nil
}

const listMessagesSQL = `
SELECT id, title, content, author_id, tutor_id, parent_id, role, created_at
FROM boards
WHERE parent_id = $1 AND role = 'message'
ORDER BY created_at ASC, id ASC`

// ListMessages returns every message of a conversation in thread order:
// created_at ascending, serial id as the insertion-order tie-break.
func (r *Repo) ListMessages(ctx context.Context, conversationID int64) ([]*domain.Board, error) {
	rows, err := r.pool.Query(ctx, listMessagesSQL, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.TutorID, &b.ParentID, &b.Role, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

const listConversationsByStudentSQL = `
SELECT b.id, b.title, b.content, COALESCE(t.name, 'Unknown'), b.created_at
FROM boards b
LEFT JOIN tutors t ON b.tutor_id = t.id
WHERE b.role = 'conversation' AND b.author_id = $1
ORDER BY b.created_at DESC, b.id DESC`

// ListConversationsByStudent returns a student's conversations, most recent
// first, with the tutor's display name as the counterpart.
func (r *Repo) ListConversationsByStudent(ctx context.Context, studentID int64) ([]*domain.ConversationSummary, error) {
	return r.listSummaries(ctx, listConversationsByStudentSQL, studentID)
}

const listConversationsByTutorSQL = `
SELECT b.id, b.title, b.content, COALESCE(s.name, 'Unknown'), b.created_at
FROM boards b
LEFT JOIN students s ON b.author_id = s.id
WHERE b.role = 'conversation' AND b.tutor_id = $1
ORDER BY b.created_at DESC, b.id DESC`

// ListConversationsByTutor returns a tutor's conversations, most recent
// first, with the originating student's display name as the counterpart.
func (r *Repo) ListConversationsByTutor(ctx context.Context, tutorID int64) ([]*domain.ConversationSummary, error) {
	return r.listSummaries(ctx, listConversationsByTutorSQL, tutorID)
}

func (r *Repo) listSummaries(ctx context.Context, query string, participantID int64) ([]*domain.ConversationSummary, error) {
	rows, err := r.pool.Query(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.ConversationSummary
	for rows.Next() {
		var s domain.ConversationSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Counterpart, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	return summaries, nil
}
