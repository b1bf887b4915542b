// Package schedule computes the derived scheduling metrics of a task.
//
// The four metrics (delay status, task age, days left, delayed days) are pure
// functions of the task's status, ETA and creation time plus "today". They
// are recomputed on every read and never stored, so responses always reflect
// the caller's current clock.
package schedule

import (
	"time"

	"github.com/workdeck/workdeck-api/internal/domain"
)

// Metrics holds the derived scheduling fields of a task.
//
// DaysLeft is nil when the task has no ETA. It clamps at zero once the ETA
// has passed; overdue-ness is only visible through DelayStatus/DelayedDays.
type Metrics struct {
	DelayStatus bool `json:"delay_status"`
	TaskAge     int  `json:"task_age"`
	DaysLeft    *int `json:"days_left"`
	DelayedDays int  `json:"delayed_days"`
}

// Compute derives the metrics for a task as of the given instant.
// It is deterministic: the same inputs always produce the same metrics.
func Compute(status domain.TaskStatus, eta *time.Time, createdAt time.Time, now time.Time) Metrics {
	today := dateOf(now)
	etaDate := normalizeETA(eta)

	m := Metrics{
		TaskAge:     taskAge(createdAt, today),
		DaysLeft:    daysLeft(etaDate, today),
		DelayedDays: delayedDays(status, etaDate, today),
	}
	m.DelayStatus = m.DelayedDays > 0

	return m
}

// ForTask derives the metrics for the given task as of now.
func ForTask(t *domain.Task, now time.Time) Metrics {
	return Compute(t.Status, t.ETA, t.CreatedAt, now)
}

// normalizeETA truncates an ETA (which may carry a time-of-day component)
// to a calendar date. Returns nil when the task has no ETA.
func normalizeETA(eta *time.Time) *time.Time {
	if eta == nil {
		return nil
	}
	d := dateOf(*eta)
	return &d
}

// taskAge is the number of whole days since the task was created, never
// negative. A zero CreatedAt yields 0.
func taskAge(createdAt time.Time, today time.Time) int {
	if createdAt.IsZero() {
		return 0
	}
	age := daysBetween(dateOf(createdAt), today)
	if age < 0 {
		return 0
	}
	return age
}

// daysLeft is the number of days until the ETA, clamped at zero.
// Nil when there is no ETA; a task due today has zero days left.
func daysLeft(etaDate *time.Time, today time.Time) *int {
	if etaDate == nil {
		return nil
	}
	left := daysBetween(today, *etaDate)
	if left < 0 {
		left = 0
	}
	return &left
}

// delayedDays is the number of days the task is overdue. Completed tasks are
// never considered delayed, regardless of their ETA.
func delayedDays(status domain.TaskStatus, etaDate *time.Time, today time.Time) int {
	if status == domain.TaskStatusCompleted {
		return 0
	}
	if etaDate == nil {
		return 0
	}
	overdue := daysBetween(*etaDate, today)
	if overdue < 0 {
		return 0
	}
	return overdue
}

// dateOf truncates an instant to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be midnight UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
