// Package report renders time-tracking data into plain-text reports and the
// daily work-report e-mail. Every renderer is a pure function of its input
// and the injected clock.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/wigac/wigac-backend/internal/domain"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════════\n"
	lightRule = "───────────────────────────────────────────────────────────────────\n"

	noProject = "Sin proyecto"
)

var (
	weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthsES   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// Options configures a Generator.
type Options struct {
	// Now supplies the "generated at" timestamp.
	Now func() time.Time
	// Location is used to format Now.
	Location *time.Location
	// Issuer is printed on the "Expedido por" line.
	Issuer string
}

// Generator renders reports with a fixed clock and issuer.
type Generator struct {
	now    func() time.Time
	loc    *time.Location
	issuer string
}

// New creates a Generator. Zero options fall back to time.Now, UTC and
// "Wigac Manager".
func New(opts Options) *Generator {
	g := &Generator{now: opts.Now, loc: opts.Location, issuer: opts.Issuer}
	if g.now == nil {
		g.now = time.Now
	}
	if g.loc == nil {
		g.loc = time.UTC
	}
	if g.issuer == "" {
		g.issuer = "Wigac Manager"
	}
	return g
}

// LongDateES formats a day as "lunes, 6 de mayo de 2024".
func LongDateES(d time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdaysES[d.Weekday()], d.Day(), monthsES[d.Month()-1], d.Year())
}

// ShortDate formats an ISO day as dd/MM/yyyy.
func ShortDate(day string) (string, error) {
	d, err := domain.ParseDay(day)
	if err != nil {
		return "", err
	}
	return d.Format("02/01/2006"), nil
}

func (g *Generator) generatedAt() string {
	return g.now().In(g.loc).Format("02/01/2006 15:04")
}

func (g *Generator) header(b *strings.Builder, title string, day time.Time) {
	b.WriteString(heavyRule)
	b.WriteString(title + "\n")
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(b, "Fecha: %s\n", LongDateES(day))
	fmt.Fprintf(b, "Generado: %s\n", g.generatedAt())
	fmt.Fprintf(b, "Expedido por: %s\n\n", g.issuer)
	b.WriteString(lightRule + "\n")
}

func projectName(t *domain.Task, fallback string) string {
	if name := t.ProjectName(); name != "" {
		return name
	}
	return fallback
}

func entriesOn(t domain.Task, date string) []domain.Subtask {
	var out []domain.Subtask
	for _, s := range t.Subtasks {
		if s.WorkDate == date {
			out = append(out, s)
		}
	}
	return out
}
