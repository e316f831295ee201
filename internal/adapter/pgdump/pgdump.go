// Package pgdump produces plain-SQL database dumps with the pg_dump binary.
package pgdump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wigac/wigac-backend/internal/config"
)

// ErrTimeout is returned when pg_dump does not finish within the configured
// timeout.
var ErrTimeout = errors.New("database dump timed out")

const maxStderr = 2048

// Dumper runs pg_dump against one database.
type Dumper struct {
	log     *slog.Logger
	bin     string
	tempDir string
	timeout time.Duration
	loc     *time.Location
	now     func() time.Time

	host     string
	port     uint16
	user     string
	password string
	database string
}

// New creates a Dumper for the database addressed by dsn. Filenames are
// stamped in loc.
func New(logger *slog.Logger, cfg config.BackupConfig, dsn string, loc *time.Location) (*Dumper, error) {
	pc, err := pgconn.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgdump: parse dsn: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Dumper{
		log:      logger.With("component", "pgdump"),
		bin:      cfg.PgDumpPath,
		tempDir:  cfg.TempDir,
		timeout:  cfg.Timeout,
		loc:      loc,
		now:      time.Now,
		host:     pc.Host,
		port:     pc.Port,
		user:     pc.User,
		password: pc.Password,
		database: pc.Database,
	}, nil
}

// Filename returns the download name for a dump taken at t:
// yyyyMMdd_HHmm_<database>.sql.
func (d *Dumper) Filename(t time.Time) string {
	return t.In(d.loc).Format("20060102_1504") + "_" + d.database + ".sql"
}

// Timeout is the upper bound of one Dump.
func (d *Dumper) Timeout() time.Duration { return d.timeout }

// Check reports whether the pg_dump binary can be found.
func (d *Dumper) Check(context.Context) error {
	if _, err := exec.LookPath(d.bin); err != nil {
		return fmt.Errorf("pgdump: %w", err)
	}
	return nil
}

// Backup is a finished dump. Close removes the underlying temp file.
type Backup struct {
	Name string
	Size int64

	file *os.File
}

func (b *Backup) Read(p []byte) (int, error) { return b.file.Read(p) }

// Close closes and removes the dump file.
func (b *Backup) Close() error {
	cerr := b.file.Close()
	rerr := os.Remove(b.file.Name())
	if errors.Is(rerr, os.ErrNotExist) {
		rerr = nil
	}
	return errors.Join(cerr, rerr)
}

// Dump runs pg_dump into a temp file and returns it opened for reading. The
// temp file is removed on every failure path; on success the caller owns it
// through Backup.Close.
func (d *Dumper) Dump(ctx context.Context) (_ *Backup, err error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	f, err := os.CreateTemp(d.tempDir, "wigac-dump-*.sql")
	if err != nil {
		return nil, fmt.Errorf("pgdump: temp file: %w", err)
	}
	path := f.Name()
	keep := false
	defer func() {
		if !keep {
			_ = f.Close()
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				d.log.Error("remove dump file", slog.String("path", path), slog.String("error", rmErr.Error()))
			}
		}
	}()

	started := d.now()
	cmd := exec.CommandContext(ctx, d.bin, d.args(path)...)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+d.password)
	cmd.WaitDelay = 5 * time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("pgdump: after %s: %w", d.timeout, ErrTimeout)
		}
		return nil, fmt.Errorf("pgdump: %w: %s", err, tail(stderr.String()))
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("pgdump: stat: %w", err)
	}
	if info.Size() == 0 {
		return nil, errors.New("pgdump: dump file is empty")
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("pgdump: rewind: %w", err)
	}

	d.log.InfoContext(ctx, "database dumped",
		slog.String("database", d.database),
		slog.Int64("bytes", info.Size()),
		slog.Duration("duration", d.now().Sub(started)))

	keep = true
	return &Backup{Name: d.Filename(started), Size: info.Size(), file: f}, nil
}

func (d *Dumper) args(out string) []string {
	args := []string{"-F", "p", "-f", out}
	if d.host != "" {
		args = append(args, "-h", d.host)
	}
	if d.port != 0 {
		args = append(args, "-p", strconv.Itoa(int(d.port)))
	}
	if d.user != "" {
		args = append(args, "-U", d.user)
	}
	return append(args, "-d", d.database)
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderr {
		return s[len(s)-maxStderr:]
	}
	return s
}
