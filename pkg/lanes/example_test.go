package lanes_test

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/lanes"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

func ExampleAssign() {
	day := func(d int) civil.Date { return civil.Date{Year: 2025, Month: time.December, Day: d} }
	tasks := []schedule.Task{
		{Contractor: "MediaPro", Name: "LED wall", Start: day(4), Duration: 3},
		{Contractor: "Dynamic Motion", Name: "Rigging", Start: day(4), Duration: 3},
		{Contractor: "Dynamic Motion", Name: "Track", Start: day(5), Duration: 2},
	}

	plan := lanes.Assign(tasks, []string{"Dynamic Motion", "MediaPro"})
	for _, a := range plan.Assignments {
		fmt.Printf("%s/%s: lane %d, slot %d\n", a.Contractor, tasks[a.Task].Name, a.Lane, a.StackIndex())
	}
	// Output:
	// MediaPro/LED wall: lane 0, slot 2
	// Dynamic Motion/Rigging: lane 0, slot 0
	// Dynamic Motion/Track: lane 1, slot 1
}
