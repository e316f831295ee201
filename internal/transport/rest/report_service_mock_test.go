package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/wigac/wigac-backend/internal/report"
	"github.com/wigac/wigac-backend/internal/service/reports"
	"github.com/wigac/wigac-backend/internal/timeagg"
	"sync"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	DailyPDFFunc     func(ctx context.Context, date string, userID *uuid.UUID) (*reports.WorkReportPDF, error)
	DailyTextFunc    func(ctx context.Context, date string) (string, error)
	EmailFunc        func(ctx context.Context, date string) (report.Email, error)
	ProgressTextFunc func(ctx context.Context, date string) (string, error)
	SendDailyFunc    func(ctx context.Context, date string, userID *uuid.UUID, email string) error
	TimesheetFunc    func(ctx context.Context, date string) (timeagg.Summary, error)

	calls struct {
		DailyPDF []struct {
			Ctx    context.Context
			Date   string
			UserID *uuid.UUID
		}
		DailyText []struct {
			Ctx  context.Context
			Date string
		}
		Email []struct {
			Ctx  context.Context
			Date string
		}
		ProgressText []struct {
			Ctx  context.Context
			Date string
		}
		SendDaily []struct {
			Ctx    context.Context
			Date   string
			UserID *uuid.UUID
			Email  string
		}
		Timesheet []struct {
			Ctx  context.Context
			Date string
		}
	}
	lockDailyPDF sync.RWMutex
	lockDailyText sync.RWMutex
	lockEmail sync.RWMutex
	lockProgressText sync.RWMutex
	lockSendDaily sync.RWMutex
	lockTimesheet sync.RWMutex
}

func (mock *reportServiceMock) DailyPDF(ctx context.Context, date string, userID *uuid.UUID) (*reports.WorkReportPDF, error) {
	if mock.DailyPDFFunc == nil {
		panic("reportServiceMock.DailyPDFFunc: method is nil but reportService.DailyPDF was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Date   string
		UserID *uuid.UUID
	}{
		Ctx:    ctx,
		Date:   date,
		UserID: userID,
	}
	mock.lockDailyPDF.Lock()
	mock.calls.DailyPDF = append(mock.calls.DailyPDF, callInfo)
	mock.lockDailyPDF.Unlock()
	return mock.DailyPDFFunc(ctx, date, userID)
}

func (mock *reportServiceMock) DailyPDFCalls() []struct {
	Ctx    context.Context
	Date   string
	UserID *uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		Date   string
		UserID *uuid.UUID
	}
	mock.lockDailyPDF.RLock()
	calls = mock.calls.DailyPDF
	mock.lockDailyPDF.RUnlock()
	return calls
}

func (mock *reportServiceMock) DailyText(ctx context.Context, date string) (string, error) {
	if mock.DailyTextFunc == nil {
		panic("reportServiceMock.DailyTextFunc: method is nil but reportService.DailyText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockDailyText.Lock()
	mock.calls.DailyText = append(mock.calls.DailyText, callInfo)
	mock.lockDailyText.Unlock()
	return mock.DailyTextFunc(ctx, date)
}

func (mock *reportServiceMock) DailyTextCalls() []struct {
	Ctx  context.Context
	Date string
} {
	var calls []struct {
		Ctx  context.Context
		Date string
	}
	mock.lockDailyText.RLock()
	calls = mock.calls.DailyText
	mock.lockDailyText.RUnlock()
	return calls
}

func (mock *reportServiceMock) Email(ctx context.Context, date string) (report.Email, error) {
	if mock.EmailFunc == nil {
		panic("reportServiceMock.EmailFunc: method is nil but reportService.Email was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockEmail.Lock()
	mock.calls.Email = append(mock.calls.Email, callInfo)
	mock.lockEmail.Unlock()
	return mock.EmailFunc(ctx, date)
}

func (mock *reportServiceMock) EmailCalls() []struct {
	Ctx  context.Context
	Date string
} {
	var calls []struct {
		Ctx  context.Context
		Date string
	}
	mock.lockEmail.RLock()
	calls = mock.calls.Email
	mock.lockEmail.RUnlock()
	return calls
}

func (mock *reportServiceMock) ProgressText(ctx context.Context, date string) (string, error) {
	if mock.ProgressTextFunc == nil {
		panic("reportServiceMock.ProgressTextFunc: method is nil but reportService.ProgressText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockProgressText.Lock()
	mock.calls.ProgressText = append(mock.calls.ProgressText, callInfo)
	mock.lockProgressText.Unlock()
	return mock.ProgressTextFunc(ctx, date)
}

func (mock *reportServiceMock) ProgressTextCalls() []struct {
	Ctx  context.Context
	Date string
} {
	var calls []struct {
		Ctx  context.Context
		Date string
	}
	mock.lockProgressText.RLock()
	calls = mock.calls.ProgressText
	mock.lockProgressText.RUnlock()
	return calls
}

func (mock *reportServiceMock) SendDaily(ctx context.Context, date string, userID *uuid.UUID, email string) error {
	if mock.SendDailyFunc == nil {
		panic("reportServiceMock.SendDailyFunc: method is nil but reportService.SendDaily was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Date   string
		UserID *uuid.UUID
		Email  string
	}{
		Ctx:    ctx,
		Date:   date,
		UserID: userID,
		Email:  email,
	}
	mock.lockSendDaily.Lock()
	mock.calls.SendDaily = append(mock.calls.SendDaily, callInfo)
	mock.lockSendDaily.Unlock()
	return mock.SendDailyFunc(ctx, date, userID, email)
}

func (mock *reportServiceMock) SendDailyCalls() []struct {
	Ctx    context.Context
	Date   string
	UserID *uuid.UUID
	Email  string
} {
	var calls []struct {
		Ctx    context.Context
		Date   string
		UserID *uuid.UUID
		Email  string
	}
	mock.lockSendDaily.RLock()
	calls = mock.calls.SendDaily
	mock.lockSendDaily.RUnlock()
	return calls
}

func (mock *reportServiceMock) Timesheet(ctx context.Context, date string) (timeagg.Summary, error) {
	if mock.TimesheetFunc == nil {
		panic("reportServiceMock.TimesheetFunc: method is nil but reportService.Timesheet was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date string
	}{
		Ctx:  ctx,
		Date: date,
	}
	mock.lockTimesheet.Lock()
	mock.calls.Timesheet = append(mock.calls.Timesheet, callInfo)
	mock.lockTimesheet.Unlock()
	return mock.TimesheetFunc(ctx, date)
}

func (mock *reportServiceMock) TimesheetCalls() []struct {
	Ctx  context.Context
	Date string
} {
	var calls []struct {
		Ctx  context.Context
		Date string
	}
	mock.lockTimesheet.RLock()
	calls = mock.calls.Timesheet
	mock.lockTimesheet.RUnlock()
	return calls
}
