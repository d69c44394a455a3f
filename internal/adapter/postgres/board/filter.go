package board

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/zututors/zututors-backend/internal/domain"
)

// RequestFilter defines parameters for listing open help requests.
type RequestFilter struct {
	// StudentID restricts the listing to one student's own requests.
	// nil means all open requests (the tutor-facing inbox).
	StudentID *int64

	// SortOrder: "ASC" or "DESC" by created_at. Default: "DESC".
	SortOrder string

	// Limit is the maximum number of requests to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of requests to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *RequestFilter) normalize() {
	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

// ListPendingRequests returns request-role boards joined to their students,
// newest first by default. Requests whose author cannot be found in the
// student table still appear, with the placeholder name.
func (r *Repo) ListPendingRequests(ctx context.Context, f RequestFilter) ([]*domain.PendingRequest, error) {
	f.normalize()

	qb := sq.Select(
		"b.id",
		"b.author_id",
		"COALESCE(s.name, 'Student')",
		"b.title",
		"b.content",
		"b.created_at",
	).
		From("boards b").
		LeftJoin("students s ON b.author_id = s.id").
		Where(sq.Eq{"b.role": string(domain.RoleRequest)}).
		OrderBy("b.created_at "+f.SortOrder, "b.id "+f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		PlaceholderFormat(sq.Dollar)

	if f.StudentID != nil {
		qb = qb.Where(sq.Eq{"b.author_id": *f.StudentID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build request query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.PendingRequest
	for rows.Next() {
		var req domain.PendingRequest
		if err := rows.Scan(
			&req.ID, &req.StudentID, &req.StudentName, &req.Subject, &req.Description, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}

	return requests, nil
}
