// Package identity resolves author ids into display identities. Students and
// tutors live in two independent id spaces, so a bare author id on a message
// is ambiguous: resolution probes the student directory first, then the tutor
// directory, and degrades to an "Unknown" identity when neither matches.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zututors/zututors-backend/internal/domain"
)

type studentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Student, error)
}

type tutorRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tutor, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Tutor, error)
	List(ctx context.Context) ([]*domain.Tutor, error)
}

// Resolver provides identity lookups over both directories.
type Resolver struct {
	students studentRepo
	tutors   tutorRepo
	log      *slog.Logger
}

// NewResolver creates a new identity resolver.
func NewResolver(
	log *slog.Logger,
	students studentRepo,
	tutors tutorRepo,
) *Resolver {
	return &Resolver{
		students: students,
		tutors:   tutors,
		log:      log.With("service", "identity"),
	}
}

// ResolveStudent returns the identity of a known student.
func (r *Resolver) ResolveStudent(ctx context.Context, id int64) (domain.Identity, error) {
	s, err := r.students.GetByID(ctx, id)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("resolve student %d: %w", id, err)
	}
	return domain.Identity{Kind: domain.KindStudent, ID: s.ID, Name: s.Name}, nil
}

// ResolveTutor returns the identity of a known tutor.
func (r *Resolver) ResolveTutor(ctx context.Context, id int64) (domain.Identity, error) {
	t, err := r.tutors.GetByID(ctx, id)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("resolve tutor %d: %w", id, err)
	}
	return domain.Identity{Kind: domain.KindTutor, ID: t.ID, Name: t.Name}, nil
}

// Resolve probes both directories for an ambiguous id, students first. The
// id spaces are independent, so an id present in both resolves as a student;
// an id present in neither returns domain.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, id int64) (domain.Identity, error) {
	ident, err := r.ResolveStudent(ctx, id)
	if err == nil {
		return ident, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Identity{}, err
	}

	ident, err = r.ResolveTutor(ctx, id)
	if err == nil {
		return ident, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Identity{}, err
	}

	return domain.Identity{}, fmt.Errorf("resolve participant %d: %w", id, domain.ErrNotFound)
}

// ListTutors returns the tutor directory, oldest registration first.
func (r *Resolver) ListTutors(ctx context.Context) ([]*domain.Tutor, error) {
	tutors, err := r.tutors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}
