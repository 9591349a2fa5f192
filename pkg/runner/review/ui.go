package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/cram/pkg/session"
	"tableflip.dev/cram/pkg/srs"
	"tableflip.dev/cram/pkg/store"
	"tableflip.dev/cram/pkg/timeutil"
)

// keyMap lists the review bindings for the help footer.
type keyMap struct {
	Flip    key.Binding
	Again   key.Binding
	Hard    key.Binding
	Good    key.Binding
	Easy    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Browse  key.Binding
	Shuffle key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Flip:    key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "flip")),
		Again:   key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1", "again")),
		Hard:    key.NewBinding(key.WithKeys("2", "h"), key.WithHelp("2", "hard")),
		Good:    key.NewBinding(key.WithKeys("3", "g"), key.WithHelp("3", "good")),
		Easy:    key.NewBinding(key.WithKeys("4", "e"), key.WithHelp("4", "easy")),
		Next:    key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		Prev:    key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "prev")),
		Browse:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse")),
		Shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Again, k.Hard, k.Good, k.Easy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Again, k.Hard, k.Good, k.Easy},
		{k.Next, k.Prev, k.Browse, k.Shuffle, k.Reset, k.Quit},
	}
}

// Model contains the review UI state.
type Model struct {
	sess  *session.Session
	sched *srs.Scheduler
	p     store.Persistence
	text  string // raw deck source, carried through saves

	watch <-chan store.Event

	keys keyMap
	help help.Model

	theme      Theme
	status     string
	termWidth  int
	termHeight int
}

// New creates a review UI over the session. The persistence handle may be nil
// in tests; saves become no-ops.
func New(sess *session.Session, sched *srs.Scheduler, p store.Persistence, text string) *Model {
	h := help.New()
	h.ShowAll = false
	return &Model{
		sess:  sess,
		sched: sched,
		p:     p,
		text:  text,
		keys:  defaultKeyMap(),
		help:  h,
		theme: DefaultTheme(),
	}
}

// timeNow is swapped out in tests for deterministic grade previews.
var timeNow = time.Now

// messages
type errMsg struct{ err error }
type deckChangedMsg struct{}

func (m *Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return deckChangedMsg{}
	}
}

// Init starts the store watcher, if any.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// save persists the current deck after every state change.
func (m *Model) save(cmds *[]tea.Cmd) {
	if m.p == nil {
		return
	}
	snap := &store.Snapshot{Text: m.text, Cards: m.sess.Cards()}
	if err := m.p.Save(snap); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
	}
}

func (m *Model) reload(cmds *[]tea.Cmd) {
	if m.p == nil {
		return
	}
	snap, err := m.p.Snapshot(context.Background())
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	if snap == nil {
		return
	}
	m.text = snap.Text
	m.sess.SetDeck(snap.Cards)
	m.status = "Deck reloaded"
}

func (m *Model) grade(g srs.Grade, cmds *[]tea.Cmd) {
	if m.sess.Grade(g) {
		m.status = fmt.Sprintf("Graded %s", g)
		m.save(cmds)
	}
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case deckChangedMsg:
		m.reload(&cmds)
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			cmds = append(cmds, tea.Quit)
		case "?":
			m.help.ShowAll = !m.help.ShowAll
		case "space", "enter":
			m.sess.Flip()
		case "1", "a":
			m.grade(srs.Again, &cmds)
		case "2", "h":
			m.grade(srs.Hard, &cmds)
		case "3", "g":
			m.grade(srs.Good, &cmds)
		case "4", "e":
			m.grade(srs.Easy, &cmds)
		case "n", "right":
			m.sess.Next()
		case "p", "left":
			m.sess.Prev()
		case "b":
			if m.sess.Mode() == session.Browse {
				m.sess.SetMode(session.Review)
				m.status = "Review mode"
			} else {
				m.sess.SetMode(session.Browse)
				m.status = "Browse mode"
			}
		case "s":
			m.sess.Shuffle()
			m.status = "Shuffled"
			m.save(&cmds)
		case "R":
			m.sess.ResetProgress()
			m.status = "Progress reset"
			m.save(&cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the title bar, the card panel, and the help footer.
func (m *Model) View() string {
	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	progress := m.sess.Progress()
	title := fmt.Sprintf("cram · %s · %d due · %d%%",
		m.sess.Mode(), m.sess.DueCount(), progress)
	b.WriteString(m.theme.Title.Foreground(m.theme.ProgressColor(progress)).Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.cardPanel(width))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) cardPanel(width int) string {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	c, ok := m.sess.ActiveCard()
	if !ok {
		if m.sess.Size() == 0 {
			return m.theme.Empty.Render("Deck is empty. Load one with: cram load <file>")
		}
		return m.theme.Empty.Render("All caught up — nothing is due right now.")
	}

	var lines []string
	lines = append(lines, m.theme.Faint.Render(fmt.Sprintf("#%d · %s", c.ID, c.Kind)))
	lines = append(lines, "")
	lines = append(lines, wordwrap.String(c.Question(), inner))

	if m.sess.Revealed() {
		lines = append(lines, "")
		lines = append(lines, m.theme.Rule.Render(strings.Repeat("─", inner)))
		lines = append(lines, "")
		lines = append(lines, m.theme.Answer.Render(wordwrap.String(c.Answer(), inner)))
		lines = append(lines, "")
		lines = append(lines, m.gradeBar(c.SRS))
	} else {
		lines = append(lines, "")
		lines = append(lines, m.theme.Faint.Render("space to reveal"))
	}

	return m.theme.Panel.Width(inner + 4).Render(strings.Join(lines, "\n"))
}

// gradeBar previews the interval each grade would schedule.
func (m *Model) gradeBar(state srs.State) string {
	preview := m.sched.Preview(state, timeNow())
	parts := make([]string, 0, 4)
	for _, g := range srs.Grades() {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", int(g), g, timeutil.Format(preview[g])))
	}
	return m.theme.Faint.Render(strings.Join(parts, "  "))
}
