package quicknote

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/domain"
	"sync"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID uuid.UUID) (*domain.QuickNote, error)
	SaveFunc        func(ctx context.Context, userID uuid.UUID, content string) (*domain.QuickNote, error)

	calls struct {
		GetOrCreate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Save []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Content string
		}
	}
	lockGetOrCreate sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *noteRepoMock) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.QuickNote, error) {
	if mock.GetOrCreateFunc == nil {
		panic("noteRepoMock.GetOrCreateFunc: method is nil but noteRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, userID)
}

func (mock *noteRepoMock) GetOrCreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetOrCreate.RLock()
	calls = mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) Save(ctx context.Context, userID uuid.UUID, content string) (*domain.QuickNote, error) {
	if mock.SaveFunc == nil {
		panic("noteRepoMock.SaveFunc: method is nil but noteRepo.Save was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Content string
	}{
		Ctx:     ctx,
		UserID:  userID,
		Content: content,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, content)
}

func (mock *noteRepoMock) SaveCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Content string
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Content string
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
