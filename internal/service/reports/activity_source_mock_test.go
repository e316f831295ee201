package reports

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ activitySource = &activitySourceMock{}

type activitySourceMock struct {
	ListForFunc func(ctx context.Context, userID uuid.UUID, f domain.ActivityFilter) ([]domain.Activity, error)

	calls struct {
		ListFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.ActivityFilter
		}
	}
	lockListFor sync.RWMutex
}

func (mock *activitySourceMock) ListFor(ctx context.Context, userID uuid.UUID, f domain.ActivityFilter) ([]domain.Activity, error) {
	if mock.ListForFunc == nil {
		panic("activitySourceMock.ListForFunc: method is nil but activitySource.ListFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.ActivityFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		F:      f,
	}
	mock.lockListFor.Lock()
	mock.calls.ListFor = append(mock.calls.ListFor, callInfo)
	mock.lockListFor.Unlock()
	return mock.ListForFunc(ctx, userID, f)
}

func (mock *activitySourceMock) ListForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.ActivityFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.ActivityFilter
	}
	mock.lockListFor.RLock()
	calls = mock.calls.ListFor
	mock.lockListFor.RUnlock()
	return calls
}
