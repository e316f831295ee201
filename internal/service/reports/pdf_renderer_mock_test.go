package reports

import (
	"github.com/wigac/wigac-backend/internal/report"
	"sync"
)

var _ pdfRenderer = &pdfRendererMock{}

type pdfRendererMock struct {
	WorkReportFunc func(w report.WorkReport) ([]byte, error)

	calls struct {
		WorkReport []struct {
			W report.WorkReport
		}
	}
	lockWorkReport sync.RWMutex
}

func (mock *pdfRendererMock) WorkReport(w report.WorkReport) ([]byte, error) {
	if mock.WorkReportFunc == nil {
		panic("pdfRendererMock.WorkReportFunc: method is nil but pdfRenderer.WorkReport was just called")
	}
	callInfo := struct {
		W report.WorkReport
	}{
		W: w,
	}
	mock.lockWorkReport.Lock()
	mock.calls.WorkReport = append(mock.calls.WorkReport, callInfo)
	mock.lockWorkReport.Unlock()
	return mock.WorkReportFunc(w)
}

func (mock *pdfRendererMock) WorkReportCalls() []struct {
	W report.WorkReport
} {
	var calls []struct {
		W report.WorkReport
	}
	mock.lockWorkReport.RLock()
	calls = mock.calls.WorkReport
	mock.lockWorkReport.RUnlock()
	return calls
}
