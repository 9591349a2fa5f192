// Package grades provides CLI helpers to display the grading legend.
package grades

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cram/pkg/srs"
	"tableflip.dev/cram/pkg/timeutil"
)

// Grades prints the grade legend describing keys and their effect.
type Grades struct {
	Scheduler *srs.Scheduler
}

var meanings = map[srs.Grade]string{
	srs.Again: "forgot it, start over",
	srs.Hard:  "barely, shrink the gap",
	srs.Good:  "got it, grow the gap",
	srs.Easy:  "trivial, grow it more",
}

// Do renders the grade key to stdout.
func (g *Grades) Do(ctx context.Context) error {
	sched := g.Scheduler
	if sched == nil {
		sched = srs.NewScheduler(srs.SchedulerConfig{})
	}

	now := time.Now()
	preview := sched.Preview(srs.NewState(now), now)

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Grade"), bold.Sprint("Meaning"), bold.Sprint("First review"))
	for _, gr := range srs.Grades() {
		tbl.AddRow(fmt.Sprintf("%d", int(gr)), gr.String(), meanings[gr], timeutil.Format(preview[gr]))
	}

	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}
