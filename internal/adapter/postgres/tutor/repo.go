// Package tutor implements the tutor identity repository using PostgreSQL.
package tutor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zututors/zututors-backend/internal/adapter/postgres"
	"github.com/zututors/zututors-backend/internal/domain"
)

// Repo provides tutor lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tutor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, email, name, subjects, bio, created_at
FROM tutors
WHERE id = $1`

// GetByID returns a tutor by primary key.
// Returns domain.ErrNotFound if no tutor has the id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tutor, error) {
	var t domain.Tutor
	err := r.pool.QueryRow(ctx, getByIDSQL, id).Scan(
		&t.ID, &t.Email, &t.Name, &t.Subjects, &t.Bio, &t.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "tutor", id)
	}

	return &t, nil
}

const getByIDsSQL = `
SELECT id, email, name, subjects, bio, created_at
FROM tutors
WHERE id = ANY($1)`

// GetByIDs returns the tutors whose ids appear in the given set. Missing
// ids are simply absent from the result; callers decide how to degrade.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Tutor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get tutors by ids: %w", err)
	}
	defer rows.Close()

	return scanTutors(rows)
}

const listSQL = `
SELECT id, email, name, subjects, bio, created_at
FROM tutors
ORDER BY id ASC`

// List returns the full tutor directory, oldest registration first.
func (r *Repo) List(ctx context.Context) ([]*domain.Tutor, error) {
	rows, err := r.pool.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	return scanTutors(rows)
}

func scanTutors(rows pgx.Rows) ([]*domain.Tutor, error) {
	var tutors []*domain.Tutor
	for rows.Next() {
		var t domain.Tutor
		if err := rows.Scan(&t.ID, &t.Email, &t.Name, &t.Subjects, &t.Bio, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutors: %w", err)
	}

	return tutors, nil
}
