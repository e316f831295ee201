package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/task"
	"sync"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	CreateFunc         func(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc           func(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error)
	RangeFunc          func(ctx context.Context, from string, to string) ([]domain.Task, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, input task.UpdateInput) (*domain.Task, error)
	UpdatePositionFunc func(ctx context.Context, id uuid.UUID, x float64, y float64) (*domain.Task, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, input task.StatusInput) (*domain.Task, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input task.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.TaskFilter
		}
		Range []struct {
			Ctx  context.Context
			From string
			To   string
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input task.UpdateInput
		}
		UpdatePosition []struct {
			Ctx context.Context
			Id  uuid.UUID
			X   float64
			Y   float64
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input task.StatusInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet sync.RWMutex
	lockList sync.RWMutex
	lockRange sync.RWMutex
	lockUpdate sync.RWMutex
	lockUpdatePosition sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *taskServiceMock) Create(ctx context.Context, input task.CreateInput) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskServiceMock.CreateFunc: method is nil but taskService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *taskServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input task.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input task.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskServiceMock.DeleteFunc: method is nil but taskService.Delete was just called")
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

func (mock *taskServiceMock) DeleteCalls() []struct {
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

func (mock *taskServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetFunc == nil {
		panic("taskServiceMock.GetFunc: method is nil but taskService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *taskServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *taskServiceMock) List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but taskService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TaskFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *taskServiceMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TaskFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.TaskFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskServiceMock) Range(ctx context.Context, from string, to string) ([]domain.Task, error) {
	if mock.RangeFunc == nil {
		panic("taskServiceMock.RangeFunc: method is nil but taskService.Range was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From string
		To   string
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockRange.Lock()
	mock.calls.Range = append(mock.calls.Range, callInfo)
	mock.lockRange.Unlock()
	return mock.RangeFunc(ctx, from, to)
}

func (mock *taskServiceMock) RangeCalls() []struct {
	Ctx  context.Context
	From string
	To   string
} {
	var calls []struct {
		Ctx  context.Context
		From string
		To   string
	}
	mock.lockRange.RLock()
	calls = mock.calls.Range
	mock.lockRange.RUnlock()
	return calls
}

func (mock *taskServiceMock) Update(ctx context.Context, id uuid.UUID, input task.UpdateInput) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskServiceMock.UpdateFunc: method is nil but taskService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input task.UpdateInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *taskServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input task.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input task.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdatePosition(ctx context.Context, id uuid.UUID, x float64, y float64) (*domain.Task, error) {
	if mock.UpdatePositionFunc == nil {
		panic("taskServiceMock.UpdatePositionFunc: method is nil but taskService.UpdatePosition was just called")
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

func (mock *taskServiceMock) UpdatePositionCalls() []struct {
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

func (mock *taskServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, input task.StatusInput) (*domain.Task, error) {
	if mock.UpdateStatusFunc == nil {
		panic("taskServiceMock.UpdateStatusFunc: method is nil but taskService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input task.StatusInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, input)
}

func (mock *taskServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input task.StatusInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input task.StatusInput
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
