package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wigac/wigac-backend/internal/adapter/pgdump"
)

type backupService interface {
	Dump(ctx context.Context) (*pgdump.Backup, error)
}

// streamWindow is the time left for sending the dump once pg_dump is done.
const streamWindow = 2 * time.Minute

// BackupHandler serves database dumps.
type BackupHandler struct {
	svc         backupService
	rs          *Responder
	log         *slog.Logger
	dumpTimeout time.Duration
}

// NewBackupHandler creates a BackupHandler. dumpTimeout is the pg_dump
// bound; the response write deadline is pushed past it.
func NewBackupHandler(svc backupService, rs *Responder, logger *slog.Logger, dumpTimeout time.Duration) *BackupHandler {
	return &BackupHandler{svc: svc, rs: rs, log: logger.With("handler", "backup"), dumpTimeout: dumpTimeout}
}

// Download handles GET /backup/download. The dump completes before the
// first byte is sent, so failures up to then are reported as JSON errors.
// Once streaming has begun errors can only be logged. The server write
// timeout is replaced by the dump timeout plus streamWindow.
func (h *BackupHandler) Download(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Now().Add(h.dumpTimeout + streamWindow)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.WarnContext(r.Context(), "extend write deadline", slog.String("error", err.Error()))
	}

	b, err := h.svc.Dump(r.Context())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	defer func() {
		if err := b.Close(); err != nil {
			h.log.WarnContext(r.Context(), "remove dump file", slog.String("error", err.Error()))
		}
	}()

	w.Header().Set("Content-Type", "application/sql")
	w.Header().Set("Content-Disposition", `attachment; filename="`+b.Name+`"`)
	w.Header().Set("Content-Length", strconv.FormatInt(b.Size, 10))
	w.WriteHeader(http.StatusOK)

	if n, err := io.Copy(w, b); err != nil {
		h.log.ErrorContext(r.Context(), "stream dump",
			slog.String("file", b.Name),
			slog.Int64("written", n),
			slog.String("error", err.Error()),
		)
	}
}
