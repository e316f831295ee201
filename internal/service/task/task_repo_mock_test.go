package task

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc         func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc           func(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error)
	ListByIDsFunc      func(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error)
	UpdateFunc         func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdatePositionFunc func(ctx context.Context, id uuid.UUID, x float64, y float64) (*domain.Task, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.TaskStatus, transversal bool) (*domain.Task, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Task
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Scope access.Scope
			F     domain.TaskFilter
		}
		ListByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			T   *domain.Task
		}
		UpdatePosition []struct {
			Ctx context.Context
			Id  uuid.UUID
			X   float64
			Y   float64
		}
		UpdateStatus []struct {
			Ctx         context.Context
			Id          uuid.UUID
			Status      domain.TaskStatus
			Transversal bool
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
	lockListByIDs sync.RWMutex
	lockUpdate sync.RWMutex
	lockUpdatePosition sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Task
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *taskRepoMock) List(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
		F     domain.TaskFilter
	}{
		Ctx:   ctx,
		Scope: scope,
		F:     f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, f)
}

func (mock *taskRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	F     domain.TaskFilter
} {
	var calls []struct {
		Ctx   context.Context
		Scope access.Scope
		F     domain.TaskFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error) {
	if mock.ListByIDsFunc == nil {
		panic("taskRepoMock.ListByIDsFunc: method is nil but taskRepo.ListByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockListByIDs.Lock()
	mock.calls.ListByIDs = append(mock.calls.ListByIDs, callInfo)
	mock.lockListByIDs.Unlock()
	return mock.ListByIDsFunc(ctx, ids)
}

func (mock *taskRepoMock) ListByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockListByIDs.RLock()
	calls = mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}

func (mock *taskRepoMock) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Task
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskRepoMock) UpdatePosition(ctx context.Context, id uuid.UUID, x float64, y float64) (*domain.Task, error) {
	if mock.UpdatePositionFunc == nil {
		panic("taskRepoMock.UpdatePositionFunc: method is nil but taskRepo.UpdatePosition was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		X   float64
		Y   float64
	}{
		Ctx: ctx,
		Id:  id,
		X:   x,
		Y:   y,
	}
	mock.lockUpdatePosition.Lock()
	mock.calls.UpdatePosition = append(mock.calls.UpdatePosition, callInfo)
	mock.lockUpdatePosition.Unlock()
	return mock.UpdatePositionFunc(ctx, id, x, y)
}

func (mock *taskRepoMock) UpdatePositionCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	X   float64
	Y   float64
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		X   float64
		Y   float64
	}
	mock.lockUpdatePosition.RLock()
	calls = mock.calls.UpdatePosition
	mock.lockUpdatePosition.RUnlock()
	return calls
}

func (mock *taskRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, transversal bool) (*domain.Task, error) {
	if mock.UpdateStatusFunc == nil {
		panic("taskRepoMock.UpdateStatusFunc: method is nil but taskRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Id          uuid.UUID
		Status      domain.TaskStatus
		Transversal bool
	}{
		Ctx:         ctx,
		Id:          id,
		Status:      status,
		Transversal: transversal,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, transversal)
}

func (mock *taskRepoMock) UpdateStatusCalls() []struct {
	Ctx         context.Context
	Id          uuid.UUID
	Status      domain.TaskStatus
	Transversal bool
} {
	var calls []struct {
		Ctx         context.Context
		Id          uuid.UUID
		Status      domain.TaskStatus
		Transversal bool
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
