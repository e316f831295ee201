package regac

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	ListByDatesFunc func(ctx context.Context, userID uuid.UUID, dates []string) ([]domain.RegacLog, error)
	UpsertFunc      func(ctx context.Context, userID uuid.UUID, date string, registered bool) (domain.RegacLog, error)

	calls struct {
		ListByDates []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Dates  []string
		}
		Upsert []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Date       string
			Registered bool
		}
	}
	lockListByDates sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *logRepoMock) ListByDates(ctx context.Context, userID uuid.UUID, dates []string) ([]domain.RegacLog, error) {
	if mock.ListByDatesFunc == nil {
		panic("logRepoMock.ListByDatesFunc: method is nil but logRepo.ListByDates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Dates  []string
	}{
		Ctx:    ctx,
		UserID: userID,
		Dates:  dates,
	}
	mock.lockListByDates.Lock()
	mock.calls.ListByDates = append(mock.calls.ListByDates, callInfo)
	mock.lockListByDates.Unlock()
	return mock.ListByDatesFunc(ctx, userID, dates)
}

func (mock *logRepoMock) ListByDatesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Dates  []string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Dates  []string
	}
	mock.lockListByDates.RLock()
	calls = mock.calls.ListByDates
	mock.lockListByDates.RUnlock()
	return calls
}

func (mock *logRepoMock) Upsert(ctx context.Context, userID uuid.UUID, date string, registered bool) (domain.RegacLog, error) {
	if mock.UpsertFunc == nil {
		panic("logRepoMock.UpsertFunc: method is nil but logRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Date       string
		Registered bool
	}{
		Ctx:        ctx,
		UserID:     userID,
		Date:       date,
		Registered: registered,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, date, registered)
}

func (mock *logRepoMock) UpsertCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Date       string
	Registered bool
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Date       string
		Registered bool
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
