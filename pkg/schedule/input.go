package schedule

import "cloud.google.com/go/civil"

// Input is everything one render needs from the extraction side.
// Range is optional: when nil the caller derives it with [Input.Span] or
// supplies it explicitly.
type Input struct {
	Range      *DateRange
	Milestones []Milestone
	Tasks      []Task
	Manpower   *Manpower
	Gaps       Gaps
}

// Gaps counts records dropped while building the input because they were
// incomplete or malformed. Gaps never abort a render.
type Gaps struct {
	Milestones int `json:"milestones"`
	Tasks      int `json:"tasks"`
	Values     int `json:"values"`
}

// Total returns the number of dropped records of any kind.
func (g Gaps) Total() int {
	return g.Milestones + g.Tasks + g.Values
}

// Span returns the smallest range covering every milestone and task day.
// The second result is false when the input carries no dates at all.
func (in Input) Span() (DateRange, bool) {
	var (
		lo, hi civil.Date
		found  bool
	)
	extend := func(start, end civil.Date) {
		if !found {
			lo, hi, found = start, end, true
			return
		}
		if start.Before(lo) {
			lo = start
		}
		if end.After(hi) {
			hi = end
		}
	}
	for _, m := range in.Milestones {
		extend(m.Date, m.Date)
	}
	for _, t := range in.Tasks {
		extend(t.Start, t.End())
	}
	if !found {
		return DateRange{}, false
	}
	return DateRange{Start: lo, End: hi}, true
}
