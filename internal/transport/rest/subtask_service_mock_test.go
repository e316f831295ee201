package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/subtask"
	"sync"
)

var _ subtaskService = &subtaskServiceMock{}

type subtaskServiceMock struct {
	CreateFunc     func(ctx context.Context, input subtask.CreateInput) (*domain.Subtask, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Subtask, error)
	ListByTaskFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)
	ListMineFunc   func(ctx context.Context) ([]domain.Subtask, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, input subtask.UpdateInput) (*domain.Subtask, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input subtask.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByTask []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		ListMine []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input subtask.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet sync.RWMutex
	lockListByTask sync.RWMutex
	lockListMine sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *subtaskServiceMock) Create(ctx context.Context, input subtask.CreateInput) (*domain.Subtask, error) {
	if mock.CreateFunc == nil {
		panic("subtaskServiceMock.CreateFunc: method is nil but subtaskService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subtask.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *subtaskServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input subtask.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input subtask.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *subtaskServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("subtaskServiceMock.DeleteFunc: method is nil but subtaskService.Delete was just called")
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

func (mock *subtaskServiceMock) DeleteCalls() []struct {
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

func (mock *subtaskServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Subtask, error) {
	if mock.GetFunc == nil {
		panic("subtaskServiceMock.GetFunc: method is nil but subtaskService.Get was just called")
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

func (mock *subtaskServiceMock) GetCalls() []struct {
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

func (mock *subtaskServiceMock) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	if mock.ListByTaskFunc == nil {
		panic("subtaskServiceMock.ListByTaskFunc: method is nil but subtaskService.ListByTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListByTask.Lock()
	mock.calls.ListByTask = append(mock.calls.ListByTask, callInfo)
	mock.lockListByTask.Unlock()
	return mock.ListByTaskFunc(ctx, taskID)
}

func (mock *subtaskServiceMock) ListByTaskCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}
	mock.lockListByTask.RLock()
	calls = mock.calls.ListByTask
	mock.lockListByTask.RUnlock()
	return calls
}

func (mock *subtaskServiceMock) ListMine(ctx context.Context) ([]domain.Subtask, error) {
	if mock.ListMineFunc == nil {
		panic("subtaskServiceMock.ListMineFunc: method is nil but subtaskService.ListMine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx)
}

func (mock *subtaskServiceMock) ListMineCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListMine.RLock()
	calls = mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *subtaskServiceMock) Update(ctx context.Context, id uuid.UUID, input subtask.UpdateInput) (*domain.Subtask, error) {
	if mock.UpdateFunc == nil {
		panic("subtaskServiceMock.UpdateFunc: method is nil but subtaskService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input subtask.UpdateInput
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

func (mock *subtaskServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input subtask.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input subtask.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
