package reports

import (
	"context"
	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ taskSource = &taskSourceMock{}

type taskSourceMock struct {
	ListForFunc  func(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error)
	RangeForFunc func(ctx context.Context, scope access.Scope, from string, to string) ([]domain.Task, error)

	calls struct {
		ListFor []struct {
			Ctx   context.Context
			Scope access.Scope
			F     domain.TaskFilter
		}
		RangeFor []struct {
			Ctx   context.Context
			Scope access.Scope
			From  string
			To    string
		}
	}
	lockListFor sync.RWMutex
	lockRangeFor sync.RWMutex
}

func (mock *taskSourceMock) ListFor(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListForFunc == nil {
		panic("taskSourceMock.ListForFunc: method is nil but taskSource.ListFor was just called")
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
	mock.lockListFor.Lock()
	mock.calls.ListFor = append(mock.calls.ListFor, callInfo)
	mock.lockListFor.Unlock()
	return mock.ListForFunc(ctx, scope, f)
}

func (mock *taskSourceMock) ListForCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	F     domain.TaskFilter
} {
	var calls []struct {
		Ctx   context.Context
		Scope access.Scope
		F     domain.TaskFilter
	}
	mock.lockListFor.RLock()
	calls = mock.calls.ListFor
	mock.lockListFor.RUnlock()
	return calls
}

func (mock *taskSourceMock) RangeFor(ctx context.Context, scope access.Scope, from string, to string) ([]domain.Task, error) {
	if mock.RangeForFunc == nil {
		panic("taskSourceMock.RangeForFunc: method is nil but taskSource.RangeFor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope access.Scope
		From  string
		To    string
	}{
		Ctx:   ctx,
		Scope: scope,
		From:  from,
		To:    to,
	}
	mock.lockRangeFor.Lock()
	mock.calls.RangeFor = append(mock.calls.RangeFor, callInfo)
	mock.lockRangeFor.Unlock()
	return mock.RangeForFunc(ctx, scope, from, to)
}

func (mock *taskSourceMock) RangeForCalls() []struct {
	Ctx   context.Context
	Scope access.Scope
	From  string
	To    string
} {
	var calls []struct {
		Ctx   context.Context
		Scope access.Scope
		From  string
		To    string
	}
	mock.lockRangeFor.RLock()
	calls = mock.calls.RangeFor
	mock.lockRangeFor.RUnlock()
	return calls
}
