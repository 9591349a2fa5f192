package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cram/pkg/card"
	"tableflip.dev/cram/pkg/timeutil"
)

// PrettyPrint renders decks and stats to the terminal.
type PrettyPrint struct {
	ShowDue bool
	Now     func() time.Time // nil → time.Now
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " card")
	default:
		_, _ = c.Fprintln(color.Output, " cards")
	}
}

// Deck prints the cards in storage order, one row per card.
func (pp *PrettyPrint) Deck(cards ...*card.Card) {
	if len(cards) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	now := pp.now()
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, c := range cards {
		row := []interface{}{
			faint.Sprintf("%3d", c.ID),
			c.Kind.String(),
			c.Question(),
			c.Answer(),
		}
		if pp.ShowDue {
			row = append(row, faint.Sprint(timeutil.Until(c.SRS.Due.Time, now)))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Stats prints the aggregate progress block: deck size, due count, progress
// percentage, and the review/lapse tallies.
func (pp *PrettyPrint) Stats(total, due, progress, reps, lapses int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Cards"), fmt.Sprintf("%d", total))
	tbl.AddRow(bold.Sprint("Due"), fmt.Sprintf("%d", due))
	tbl.AddRow(bold.Sprint("Progress"), fmt.Sprintf("%d%%", progress))
	tbl.AddRow(bold.Sprint("Reviews"), fmt.Sprintf("%d", reps))
	tbl.AddRow(bold.Sprint("Lapses"), fmt.Sprintf("%d", lapses))
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
