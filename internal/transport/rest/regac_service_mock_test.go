package rest

import (
	"context"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ regacService = &regacServiceMock{}

type regacServiceMock struct {
	BatchFunc func(ctx context.Context, dates []string) (map[string]bool, error)
	GetFunc   func(ctx context.Context, date string) (bool, error)
	SetFunc   func(ctx context.Context, date string, registered bool) (domain.RegacLog, error)

	calls struct {
		Batch []struct {
			Ctx   context.Context
			Dates []string
		}
		Get []struct {
			Ctx  context.Context
			Date string
		}
		Set []struct {
			Ctx        context.Context
			Date       string
			Registered bool
		}
	}
	lockBatch sync.RWMutex
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *regacServiceMock) Batch(ctx context.Context, dates []string) (map[string]bool, error) {
	if mock.BatchFunc == nil {
		panic("regacServiceMock.BatchFunc: method is nil but regacService.Batch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Dates []string
	}{
		Ctx:   ctx,
		Dates: dates,
	}
	mock.lockBatch.Lock()
	mock.calls.Batch = append(mock.calls.Batch, callInfo)
	mock.lockBatch.Unlock()
	return mock.BatchFunc(ctx, dates)
}

func (mock *regacServiceMock) BatchCalls() []struct {
	Ctx   context.Context
	Dates []string
} {
	var calls []struct {
		Ctx   context.Context
		Dates []string
	}
	mock.lockBatch.RLock()
	calls = mock.calls.Batch
	mock.lockBatch.RUnlock()
	return calls
}

func (mock *regacServiceMock) Get(ctx context.Context, date string) (bool, error) {
	if mock.GetFunc == nil {
		panic("regacServiceMock.GetFunc: method is nil but regacService.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, date)
}

func (mock *regacServiceMock) GetCalls() []struct {
	Ctx  context.Context
	Date string
} {
	var calls []struct {
		Ctx  context.Context
		Date string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *regacServiceMock) Set(ctx context.Context, date string, registered bool) (domain.RegacLog, error) {
	if mock.SetFunc == nil {
		panic("regacServiceMock.SetFunc: method is nil but regacService.Set was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Date       string
		Registered bool
	}{
		Ctx:        ctx,
		Date:       date,
		Registered: registered,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, date, registered)
}

func (mock *regacServiceMock) SetCalls() []struct {
	Ctx        context.Context
	Date       string
	Registered bool
} {
	var calls []struct {
		Ctx        context.Context
		Date       string
		Registered bool
	}
	mock.lockSet.RLock()
	calls = mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
