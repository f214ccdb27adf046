package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hamviz/core"
	"github.com/katalvlaran/hamviz/hamilton"
	"github.com/katalvlaran/hamviz/session"
)

// transcriptLines caps the visible tail of the event log.
const transcriptLines = 12

// delayStep is the per-keystroke pacing increment.
const delayStep = 100 * time.Millisecond

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pathStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
	exploreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	visitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	backtrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	closedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
	cancelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// keymap binds the run controls; it satisfies help.KeyMap.
type keymap struct {
	PauseResume key.Binding
	Step        key.Binding
	Cancel      key.Binding
	Slower      key.Binding
	Faster      key.Binding
	Rerun       key.Binding
	Quit        key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		PauseResume: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Step: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "step"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel"),
		),
		Slower: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "faster"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rerun"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.PauseResume, k.Step, k.Cancel, k.Slower, k.Faster, k.Rerun, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PauseResume, k.Step, k.Cancel},
		{k.Slower, k.Faster, k.Rerun, k.Quit},
	}
}

// eventMsg carries one trace event off the session channel.
type eventMsg hamilton.Event

// streamDoneMsg signals that the event channel closed: the run is over.
type streamDoneMsg struct{}

// waitForEvent blocks on the session channel for the next event. The
// channel is unbuffered, so the engine cannot outrun the renderer.
func waitForEvent(ch <-chan hamilton.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return streamDoneMsg{}
		}

		return eventMsg(ev)
	}
}

// model is the bubbletea state for one (rerunnable) search session.
type model struct {
	sess   *session.Session
	events <-chan hamilton.Event

	keys keymap
	help help.Model

	path       []core.VertexID
	transcript []string
	verdict    string
	paused     bool
	done       bool
	delay      time.Duration
}

func newModel(sess *session.Session, delay time.Duration) (model, error) {
	ch, err := sess.Start()
	if err != nil {
		return model{}, err
	}

	return model{
		sess:   sess,
		events: ch,
		keys:   defaultKeymap(),
		help:   help.New(),
		delay:  delay,
	}, nil
}

func (m model) Init() tea.Cmd { return waitForEvent(m.events) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.apply(hamilton.Event(msg))

		return m, waitForEvent(m.events)

	case streamDoneMsg:
		m.done = true
		m.paused = false
		res, err := m.sess.Wait()
		switch {
		case err != nil:
			m.verdict = err.Error()
		case res.Outcome == hamilton.CycleFound:
			m.verdict = fmt.Sprintf("cycle found: %s", renderPath(res.Path, true))
		default:
			m.verdict = res.Outcome.String()
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.done {
			m.sess.Cancel()
		}

		return m, tea.Quit

	case key.Matches(msg, m.keys.PauseResume):
		if m.done {
			return m, nil
		}
		if m.paused {
			m.sess.Resume()
		} else {
			m.sess.Pause()
		}
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if !m.done && m.paused {
			m.sess.Step()
		}

	case key.Matches(msg, m.keys.Cancel):
		if !m.done {
			m.sess.Cancel()
		}

	case key.Matches(msg, m.keys.Slower):
		m.delay += delayStep
		m.sess.SetDelay(m.delay)

	case key.Matches(msg, m.keys.Faster):
		m.delay -= delayStep
		if m.delay < 0 {
			m.delay = 0
		}
		m.sess.SetDelay(m.delay)

	case key.Matches(msg, m.keys.Rerun):
		if !m.done {
			return m, nil
		}
		ch, err := m.sess.Start()
		if err != nil {
			m.verdict = err.Error()

			return m, nil
		}
		m.events = ch
		m.path = nil
		m.transcript = nil
		m.verdict = ""
		m.done = false
		m.paused = false

		return m, waitForEvent(m.events)
	}

	return m, nil
}

// apply folds one trace event into the rendered state. The path mirrors
// the engine's: start and visit push, backtrack pops.
func (m *model) apply(ev hamilton.Event) {
	switch ev.Kind {
	case hamilton.EventStart:
		m.path = []core.VertexID{ev.U}
	case hamilton.EventVisit:
		m.path = append(m.path, ev.U)
	case hamilton.EventBacktrack:
		if len(m.path) > 0 {
			m.path = m.path[:len(m.path)-1]
		}
	}

	m.transcript = append(m.transcript, styleFor(ev.Kind).Render(ev.String()))
	if len(m.transcript) > transcriptLines {
		m.transcript = m.transcript[len(m.transcript)-transcriptLines:]
	}
}

func styleFor(k hamilton.EventKind) lipgloss.Style {
	switch k {
	case hamilton.EventExplore:
		return exploreStyle
	case hamilton.EventVisit:
		return visitStyle
	case hamilton.EventBacktrack:
		return backtrackStyle
	case hamilton.EventCycleClosed:
		return closedStyle
	case hamilton.EventCancelled:
		return cancelStyle
	default:
		return titleStyle
	}
}

// renderPath joins the vertex ids with arrows; closed appends the wrap
// back to the root.
func renderPath(path []core.VertexID, closed bool) string {
	if len(path) == 0 {
		return "(empty)"
	}

	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprintf("%d", id)
	}
	s := strings.Join(parts, " → ")
	if closed {
		s += fmt.Sprintf(" → %d", path[0])
	}

	return s
}

func (m model) View() string {
	var b strings.Builder

	g := m.sess.Graph()
	b.WriteString(titleStyle.Render("hamviz — Hamiltonian cycle search"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(
		fmt.Sprintf("%d vertices · %d edges · delay %s", g.VertexCount(), g.EdgeCount(), m.delay)))
	b.WriteString("\n\n")

	b.WriteString("path: ")
	b.WriteString(pathStyle.Render(renderPath(m.path, false)))
	b.WriteString("\n\n")

	for _, line := range m.transcript {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.done:
		b.WriteString(closedStyle.Render("■ " + m.verdict))
	case m.paused:
		b.WriteString(cancelStyle.Render("▮▮ paused"))
	default:
		b.WriteString(statusStyle.Render("▶ running"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
