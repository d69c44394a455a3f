package lifecycle

import (
	"context"
	"sync"

	"github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	"github.com/zututors/zututors-backend/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	CreateRequestFunc       func(ctx context.Context, b *domain.Board) (*domain.Board, error)
	TransitionFunc          func(ctx context.Context, id int64, from, to domain.BoardRole, tutorID int64) (bool, error)
	DeleteIfRoleFunc        func(ctx context.Context, id int64, role domain.BoardRole) (bool, error)
	ListPendingRequestsFunc func(ctx context.Context, f board.RequestFilter) ([]*domain.PendingRequest, error)

	calls struct {
		CreateRequest []struct {
			Ctx context.Context
			B   *domain.Board
		}
		Transition []struct {
			Ctx     context.Context
			ID      int64
			From    domain.BoardRole
			To      domain.BoardRole
			TutorID int64
		}
		DeleteIfRole []struct {
			Ctx  context.Context
			ID   int64
			Role domain.BoardRole
		}
		ListPendingRequests []struct {
			Ctx context.Context
			F   board.RequestFilter
		}
	}
	lock sync.RWMutex
}

func (mock *boardRepoMock) CreateRequest(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if mock.CreateRequestFunc == nil {
		panic("boardRepoMock.CreateRequestFunc: method is nil but boardRepo.CreateRequest was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateRequest = append(mock.calls.CreateRequest, struct {
		Ctx context.Context
		B   *domain.Board
	}{Ctx: ctx, B: b})
	mock.lock.Unlock()
	return mock.CreateRequestFunc(ctx, b)
}

func (mock *boardRepoMock) CreateRequestCalls() []struct {
	Ctx context.Context
	B   *domain.Board
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateRequest
}

func (mock *boardRepoMock) Transition(ctx context.Context, id int64, from, to domain.BoardRole, tutorID int64) (bool, error) {
	if mock.TransitionFunc == nil {
		panic("boardRepoMock.TransitionFunc: method is nil but boardRepo.Transition was just called")
	}
	mock.lock.Lock()
	mock.calls.Transition = append(mock.calls.Transition, struct {
		Ctx     context.Context
		ID      int64
		From    domain.BoardRole
		To      domain.BoardRole
		TutorID int64
	}{Ctx: ctx, ID: id, From: from, To: to, TutorID: tutorID})
	mock.lock.Unlock()
	return mock.TransitionFunc(ctx, id, from, to, tutorID)
}

func (mock *boardRepoMock) TransitionCalls() []struct {
	Ctx     context.Context
	ID      int64
	From    domain.BoardRole
	To      domain.BoardRole
	TutorID int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Transition
}

func (mock *boardRepoMock) DeleteIfRole(ctx context.Context, id int64, role domain.BoardRole) (bool, error) {
	if mock.DeleteIfRoleFunc == nil {
		panic("boardRepoMock.DeleteIfRoleFunc: method is nil but boardRepo.DeleteIfRole was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteIfRole = append(mock.calls.DeleteIfRole, struct {
		Ctx  context.Context
		ID   int64
		Role domain.BoardRole
	}{Ctx: ctx, ID: id, Role: role})
	mock.lock.Unlock()
	return mock.DeleteIfRoleFunc(ctx, id, role)
}

func (mock *boardRepoMock) DeleteIfRoleCalls() []struct {
	Ctx  context.Context
	ID   int64
	Role domain.BoardRole
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteIfRole
}

func (mock *boardRepoMock) ListPendingRequests(ctx context.Context, f board.RequestFilter) ([]*domain.PendingRequest, error) {
	if mock.ListPendingRequestsFunc == nil {
		panic("boardRepoMock.ListPendingRequestsFunc: method is nil but boardRepo.ListPendingRequests was just called")
	}
	mock.lock.Lock()
	mock.calls.ListPendingRequests = append(mock.calls.ListPendingRequests, struct {
		Ctx context.Context
		F   board.RequestFilter
	}{Ctx: ctx, F: f})
	mock.lock.Unlock()
	return mock.ListPendingRequestsFunc(ctx, f)
}

func (mock *boardRepoMock) ListPendingRequestsCalls() []struct {
	Ctx context.Context
	F   board.RequestFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListPendingRequests
}
