package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/zututors/zututors-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ResolveAll resolves a set of ambiguous author ids in two directory queries
// at most: one batched probe per directory, students first. Ids matching
// neither directory map to the "Unknown" identity instead of failing the
// whole call, so a thread still renders when an author was deleted.
func (r *Resolver) ResolveAll(ctx context.Context, ids []int64) (map[int64]domain.Identity, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return map[int64]domain.Identity{}, nil
	}

	studentLoader := newLoader(newStudentBatchFn(r.students))

	students, errs := studentLoader.LoadMany(ctx, unique)()
	if err := firstError(errs); err != nil {
		return nil, fmt.Errorf("batch resolve students: %w", err)
	}

	resolved := make(map[int64]domain.Identity, len(unique))
	var misses []int64
	for i, id := range unique {
		if s := students[i]; s != nil {
			resolved[id] = domain.Identity{Kind: domain.KindStudent, ID: s.ID, Name: s.Name}
			continue
		}
		misses = append(misses, id)
	}

	if len(misses) > 0 {
		tutorLoader := newLoader(newTutorBatchFn(r.tutors))

		tutors, errs := tutorLoader.LoadMany(ctx, misses)()
		if err := firstError(errs); err != nil {
			return nil, fmt.Errorf("batch resolve tutors: %w", err)
		}

		for i, id := range misses {
			if t := tutors[i]; t != nil {
				resolved[id] = domain.Identity{Kind: domain.KindTutor, ID: t.ID, Name: t.Name}
				continue
			}
			r.log.WarnContext(ctx, "author id matches neither directory",
				"author_id", id)
			resolved[id] = domain.UnknownIdentity(id)
		}
	}

	return resolved, nil
}

// newLoader creates a dataloader.Loader with standard batch parameters.
// Loaders are created per call: caching across calls would serve stale names.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

func newStudentBatchFn(repo studentRepo) dataloader.BatchFunc[int64, *domain.Student] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Student] {
		students, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Student](len(keys), err)
		}

		byID := make(map[int64]*domain.Student, len(students))
		for _, s := range students {
			byID[s.ID] = s
		}

		results := make([]*dataloader.Result[*domain.Student], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Student]{Data: byID[key]}
		}
		return results
	}
}

func newTutorBatchFn(repo tutorRepo) dataloader.BatchFunc[int64, *domain.Tutor] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Tutor] {
		tutors, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Tutor](len(keys), err)
		}

		byID := make(map[int64]*domain.Tutor, len(tutors))
		for _, t := range tutors {
			byID[t.ID] = t
		}

		results := make([]*dataloader.Result[*domain.Tutor], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Tutor]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
