// Package timeagg computes durations and totals from time entries.
//
// Entries are grouped by the exact persisted work-date string; no timezone
// conversion is applied. Entries without both bounds, or with a
// non-positive range, are excluded from every aggregate.
package timeagg

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
)

// ErrUntimed is returned by Duration for entries missing a start or end time.
var ErrUntimed = errors.New("entry not timed")

// Duration returns the minutes between the entry's start and end time.
func Duration(e domain.Subtask) (int, error) {
	if e.StartTime == "" || e.EndTime == "" {
		return 0, ErrUntimed
	}
	return domain.EntryMinutes(e.StartTime, e.EndTime)
}

// minutes is Duration with invalid entries counted as zero.
func minutes(e domain.Subtask) int {
	m, err := Duration(e)
	if err != nil {
		return 0
	}
	return m
}

// GroupByDate groups entries by work date. Within a date entries are sorted
// ascending by start time; entries with equal start times keep their order.
func GroupByDate(entries []domain.Subtask) map[string][]domain.Subtask {
	groups := make(map[string][]domain.Subtask)
	for _, e := range entries {
		groups[e.WorkDate] = append(groups[e.WorkDate], e)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].StartTime < g[j].StartTime })
	}
	return groups
}

// SortedDates returns the keys of groups in ascending order.
func SortedDates(groups map[string][]domain.Subtask) []string {
	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Flatten concatenates groups in ascending date order.
func Flatten(groups map[string][]domain.Subtask) []domain.Subtask {
	var out []domain.Subtask
	for _, d := range SortedDates(groups) {
		out = append(out, groups[d]...)
	}
	return out
}

// DailyTotal sums the durations of entries worked on date.
func DailyTotal(date string, entries []domain.Subtask) int {
	total := 0
	for _, e := range entries {
		if e.WorkDate == date {
			total += minutes(e)
		}
	}
	return total
}

// TaskTotal sums the durations of all entries regardless of date.
func TaskTotal(entries []domain.Subtask) int {
	total := 0
	for _, e := range entries {
		total += minutes(e)
	}
	return total
}

// WeekBounds returns the Monday and Sunday of the ISO week containing day.
func WeekBounds(day string) (monday, sunday string, err error) {
	d, err := domain.ParseDay(day)
	if err != nil {
		return "", "", fmt.Errorf("timeagg.WeekBounds: %w", err)
	}
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start.Format(domain.DayLayout), start.AddDate(0, 0, 6).Format(domain.DayLayout), nil
}

// WeeklyTotal sums the durations of entries whose work date falls in the
// ISO week (Monday to Sunday) containing referenceDate.
func WeeklyTotal(referenceDate string, entries []domain.Subtask) (int, error) {
	monday, sunday, err := WeekBounds(referenceDate)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		// ISO days compare correctly as strings.
		if e.WorkDate >= monday && e.WorkDate <= sunday {
			total += minutes(e)
		}
	}
	return total, nil
}

// Overlap is a pair of entries on the same date whose ranges intersect.
type Overlap struct {
	First  domain.Subtask
	Second domain.Subtask
}

// Overlaps reports every pair of timed entries sharing a work date whose
// half-open ranges [start, end) intersect.
func Overlaps(entries []domain.Subtask) []Overlap {
	type span struct {
		e          domain.Subtask
		start, end int
	}
	byDate := make(map[string][]span)
	for _, e := range entries {
		if _, err := Duration(e); err != nil {
			continue
		}
		s, _ := domain.ParseClock(e.StartTime)
		en, _ := domain.ParseClock(e.EndTime)
		byDate[e.WorkDate] = append(byDate[e.WorkDate], span{e: e, start: s, end: en})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var out []Overlap
	for _, d := range dates {
		spans := byDate[d]
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
		for i := range spans {
			for j := i + 1; j < len(spans) && spans[j].start < spans[i].end; j++ {
				out = append(out, Overlap{First: spans[i].e, Second: spans[j].e})
			}
		}
	}
	return out
}

// FormatHM renders minutes as "Hh Mm".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// TaskSummary is the time booked against one task.
type TaskSummary struct {
	TaskID      uuid.UUID
	Title       string
	ProjectName string
	DayMinutes  int
	WeekMinutes int
	AllMinutes  int
}

// Summary aggregates a user's tasks around a reference date.
type Summary struct {
	Date          string
	WeekStart     string
	WeekEnd       string
	DailyMinutes  int
	WeeklyMinutes int
	Tasks         []TaskSummary
	Overlaps      []Overlap
}

// Summarize computes the day and week totals, per-task totals and overlaps
// for the entries embedded in tasks.
func Summarize(date string, tasks []domain.Task) (Summary, error) {
	monday, sunday, err := WeekBounds(date)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Date: date, WeekStart: monday, WeekEnd: sunday}
	var all []domain.Subtask
	for _, t := range tasks {
		week, _ := WeeklyTotal(date, t.Subtasks)
		sum.Tasks = append(sum.Tasks, TaskSummary{
			TaskID:      t.ID,
			Title:       t.Title,
			ProjectName: t.ProjectName(),
			DayMinutes:  DailyTotal(date, t.Subtasks),
			WeekMinutes: week,
			AllMinutes:  TaskTotal(t.Subtasks),
		})
		all = append(all, t.Subtasks...)
	}
	sum.DailyMinutes = DailyTotal(date, all)
	sum.WeeklyMinutes, _ = WeeklyTotal(date, all)
	sum.Overlaps = Overlaps(all)
	return sum, nil
}

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(domain.DayLayout)
}
