// Package student implements the student identity repository using PostgreSQL.
package student

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zututors/zututors-backend/internal/adapter/postgres"
	"github.com/zututors/zututors-backend/internal/domain"
)

// Repo provides student lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new student repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, email, name, created_at
FROM students
WHERE id = $1`

// GetByID returns a student by primary key.
// Returns domain.ErrNotFound if no student has the id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	var s domain.Student
	err := r.pool.QueryRow(ctx, getByIDSQL, id).Scan(&s.ID, &s.Email, &s.Name, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "student", id)
	}

	return &s, nil
}

const getByIDsSQL = `
SELECT id, email, name, created_at
FROM students
WHERE id = ANY($1)`

// GetByIDs returns the students whose ids appear in the given set. Missing
// ids are simply absent from the result; callers decide how to degrade.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get students by ids: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}
