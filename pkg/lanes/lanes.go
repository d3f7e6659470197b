package lanes

import (
	"slices"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// Assignment is the lane decision for one task.
type Assignment struct {
	// Task is the index of the task in the slice given to Assign.
	Task       int
	Contractor string
	Lane       int
	BaseOffset int

	// Ordinal is the task's position among its contractor's tasks once they
	// are sorted by start date; Siblings is how many tasks the contractor has.
	// Together they select the task's shade.
	Ordinal  int
	Siblings int
}

// StackIndex is the final vertical slot the task is drawn in.
func (a Assignment) StackIndex() int { return a.BaseOffset + a.Lane }

// Band is the range of slots reserved for one contractor.
type Band struct {
	Contractor string
	BaseOffset int
	Lanes      int
}

// Last returns the highest slot in the band.
func (b Band) Last() int { return b.BaseOffset + b.Lanes - 1 }

// Plan is the result of Assign.
type Plan struct {
	// Assignments has one entry per input task, in input order.
	Assignments []Assignment
	// Bands lists contractors in stacking order. Contractors without tasks
	// never appear.
	Bands []Band
}

// TotalLanes returns the number of slots used by all bands together.
func (p Plan) TotalLanes() int {
	n := 0
	for _, b := range p.Bands {
		n += b.Lanes
	}
	return n
}

// Band returns the band for a contractor.
func (p Plan) Band(contractor string) (Band, bool) {
	for _, b := range p.Bands {
		if b.Contractor == contractor {
			return b, true
		}
	}
	return Band{}, false
}

// StackIndex returns the slot of the i-th input task.
func (p Plan) StackIndex(i int) int { return p.Assignments[i].StackIndex() }

// Contractors returns contractor names in stacking order.
func (p Plan) Contractors() []string {
	names := make([]string, len(p.Bands))
	for i, b := range p.Bands {
		names[i] = b.Contractor
	}
	return names
}

// Assign computes lanes for every task and stacks contractor bands.
// priority lists contractors that must be stacked first; names in it that
// have no tasks are ignored.
func Assign(tasks []schedule.Task, priority []string) Plan {
	groups, order := groupByContractor(tasks)

	plan := Plan{Assignments: make([]Assignment, len(tasks))}
	lanesUsed := make(map[string]int, len(groups))
	for _, contractor := range order {
		lanesUsed[contractor] = assignGroup(tasks, groups[contractor], plan.Assignments)
	}

	base := 0
	for _, contractor := range stackingOrder(order, priority) {
		n := lanesUsed[contractor]
		plan.Bands = append(plan.Bands, Band{Contractor: contractor, BaseOffset: base, Lanes: n})
		for _, i := range groups[contractor] {
			plan.Assignments[i].BaseOffset = base
		}
		base += n
	}
	return plan
}

// groupByContractor returns task indices per contractor and the contractors
// in order of first appearance.
func groupByContractor(tasks []schedule.Task) (map[string][]int, []string) {
	groups := make(map[string][]int)
	var order []string
	for i, t := range tasks {
		if _, ok := groups[t.Contractor]; !ok {
			order = append(order, t.Contractor)
		}
		groups[t.Contractor] = append(groups[t.Contractor], i)
	}
	return groups, order
}

type active struct {
	end  civil.Date
	lane int
}

// assignGroup lays out one contractor's tasks and returns the number of
// lanes used. idxs is sorted in place by start date, ties keeping input order.
func assignGroup(tasks []schedule.Task, idxs []int, out []Assignment) int {
	slices.SortStableFunc(idxs, func(a, b int) int {
		return tasks[a].Start.DaysSince(tasks[b].Start)
	})

	var (
		running []active
		taken   []bool
		maxLane = -1
	)
	for pos, i := range idxs {
		t := tasks[i]

		running = slices.DeleteFunc(running, func(a active) bool {
			return a.end.Before(t.Start)
		})

		taken = taken[:0]
		for _, a := range running {
			for len(taken) <= a.lane {
				taken = append(taken, false)
			}
			taken[a.lane] = true
		}
		lane := 0
		for lane < len(taken) && taken[lane] {
			lane++
		}

		running = append(running, active{end: t.End(), lane: lane})
		maxLane = max(maxLane, lane)

		out[i] = Assignment{
			Task:       i,
			Contractor: t.Contractor,
			Lane:       lane,
			Ordinal:    pos,
			Siblings:   len(idxs),
		}
	}
	return maxLane + 1
}

// stackingOrder puts priority contractors first, then the rest in
// first-appearance order.
func stackingOrder(order, priority []string) []string {
	present := make(map[string]bool, len(order))
	for _, c := range order {
		present[c] = true
	}

	out := make([]string, 0, len(order))
	placed := make(map[string]bool, len(order))
	for _, c := range priority {
		if present[c] && !placed[c] {
			out = append(out, c)
			placed[c] = true
		}
	}
	for _, c := range order {
		if !placed[c] {
			out = append(out, c)
			placed[c] = true
		}
	}
	return out
}

// MaxOverlap returns the largest number of tasks that run on the same day.
func MaxOverlap(tasks []schedule.Task) int {
	type event struct {
		day   civil.Date
		delta int
	}
	events := make([]event, 0, 2*len(tasks))
	for _, t := range tasks {
		events = append(events, event{t.Start, +1}, event{t.End().AddDays(1), -1})
	}
	// Ends sort before starts on the same day: a task ending yesterday frees
	// its slot for one starting today.
	slices.SortFunc(events, func(a, b event) int {
		if d := a.day.DaysSince(b.day); d != 0 {
			return d
		}
		return a.delta - b.delta
	})

	best, cur := 0, 0
	for _, e := range events {
		cur += e.delta
		best = max(best, cur)
	}
	return best
}
