package calendar

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// Class is the background category of a day cell.
type Class int

const (
	// ClassMonth cells are coloured by their month.
	ClassMonth Class = iota
	// ClassWeekend cells use the weekend colour regardless of month.
	ClassWeekend
)

func (c Class) String() string {
	if c == ClassWeekend {
		return "weekend"
	}
	return "month"
}

// Background is the classification of one cell.
type Background struct {
	Class Class
	Month time.Month
}

// Classifier decides which days are weekends. The pair of weekdays is
// configuration, not an assumption about any locale.
type Classifier struct {
	Weekend [2]time.Weekday
}

// DefaultClassifier treats Friday and Saturday as the weekend.
func DefaultClassifier() Classifier {
	return Classifier{Weekend: [2]time.Weekday{time.Friday, time.Saturday}}
}

// Classify returns the background for d. Weekend wins over month.
func (c Classifier) Classify(d civil.Date) Background {
	wd := schedule.Weekday(d)
	if wd == c.Weekend[0] || wd == c.Weekend[1] {
		return Background{Class: ClassWeekend, Month: d.Month}
	}
	return Background{Class: ClassMonth, Month: d.Month}
}
