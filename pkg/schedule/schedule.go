package schedule

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/errors"
)

// Milestone is a named point in time shown as a dot on its day.
type Milestone struct {
	Name string     `json:"name"`
	Date civil.Date `json:"date"`
}

// Task is a block of work for one contractor spanning Duration consecutive
// days starting at Start.
type Task struct {
	Contractor string     `json:"contractor"`
	Name       string     `json:"name"`
	Start      civil.Date `json:"start"`
	Duration   int        `json:"duration"`
}

// End returns the last day the task occupies (inclusive).
func (t Task) End() civil.Date {
	return t.Start.AddDays(t.Duration - 1)
}

// Valid reports whether the task has a usable start date and a positive duration.
func (t Task) Valid() bool {
	return t.Start.IsValid() && t.Duration >= 1
}

// Overlaps reports whether two tasks share at least one day.
func (t Task) Overlaps(o Task) bool {
	return !t.End().Before(o.Start) && !o.End().Before(t.Start)
}

// DateRange is an inclusive span of calendar days. End is never before Start.
type DateRange struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// NewDateRange validates and returns the range [start, end].
func NewDateRange(start, end civil.Date) (DateRange, error) {
	if !start.IsValid() || !end.IsValid() {
		return DateRange{}, errors.New(errors.ErrCodeInvalidRange, "invalid date range %s – %s", start, end)
	}
	if end.Before(start) {
		return DateRange{}, errors.New(errors.ErrCodeInvalidRange, "end date %s is before start date %s", end, start)
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the number of days in the range, counting both ends.
func (r DateRange) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Offset returns the 0-based position of d from Start. The result is
// negative or >= Days() for dates outside the range.
func (r DateRange) Offset(d civil.Date) int {
	return d.DaysSince(r.Start)
}

// Dates returns every day in the range in ascending order.
func (r DateRange) Dates() []civil.Date {
	n := r.Days()
	out := make([]civil.Date, n)
	for i := range n {
		out[i] = r.Start.AddDays(i)
	}
	return out
}

// Weekday returns the day of the week for d.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}
