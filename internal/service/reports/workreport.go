package reports

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/report"
)

// WorkReportPDF is a rendered daily work report.
type WorkReportPDF struct {
	Filename string
	Data     []byte
	Report   report.WorkReport
}

// DailyPDF renders the "Parte de Trabajo Diario" of userID (the caller when
// nil) for date from their activities.
func (s *Service) DailyPDF(ctx context.Context, date string, userID *uuid.UUID) (*WorkReportPDF, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if date, err = s.day(date); err != nil {
		return nil, err
	}
	return s.render(ctx, actor, date, userID)
}

func (s *Service) render(ctx context.Context, actor access.Actor, date string, userID *uuid.UUID) (*WorkReportPDF, error) {
	var (
		user       *domain.User
		activities []domain.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.subject(gctx, actor, userID)
		return err
	})
	g.Go(func() error {
		id := actor.ID
		if userID != nil {
			id = *userID
		}
		var err error
		activities, err = s.activities.ListFor(gctx, id, domain.ActivityFilter{Date: date})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reports.DailyPDF: %w", err)
	}

	wr, err := s.gen.WorkReport(*user, date, activities)
	if err != nil {
		return nil, err
	}
	data, err := s.pdf.WorkReport(wr)
	if err != nil {
		return nil, fmt.Errorf("reports.DailyPDF: %w", err)
	}
	return &WorkReportPDF{Filename: report.WorkReportFilename(date), Data: data, Report: wr}, nil
}

// SendDaily renders the work report like DailyPDF and mails it to email, or
// to the caller's own address when email is empty.
func (s *Service) SendDaily(ctx context.Context, date string, userID *uuid.UUID, email string) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	if date, err = s.day(date); err != nil {
		return err
	}
	if email == "" {
		caller, err := s.users.GetByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("reports.SendDaily: %w", err)
		}
		email = caller.Email
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewValidationError("email", "invalid email")
	}

	rendered, err := s.render(ctx, actor, date, userID)
	if err != nil {
		return err
	}
	if err := s.mail.Send(ctx, report.WorkReportMail(email, date, rendered.Report, rendered.Data)); err != nil {
		return fmt.Errorf("reports.SendDaily: %w", err)
	}

	s.log.InfoContext(ctx, "work report sent",
		slog.String("date", date),
		slog.String("employee", rendered.Report.Employee),
		slog.String("to", email))
	return nil
}
