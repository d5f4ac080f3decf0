// Package tui renders the start page: live clock, ten-day grid, and the
// command bar with its typewriter greeting.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/pkg/browser"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/command"
	"tableflip.dev/daygrid/pkg/cycle"
	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/style"
)

// Model states
type mode int

const (
	modeIdle mode = iota
	modeTyping
	modeConfirm
	modeAlert
)

const typeSpeed = 35 * time.Millisecond

// Model contains the start page state.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	input textinput.Model

	now        time.Time
	dayKey     string
	currentDay int
	weekend    bool
	cells      [schedule.Days][schedule.Slots]schedule.Cell
	snap       style.Snapshot

	greetText  string
	greetShown int
	animID     int

	alertMsg string
	status   string

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// messages
type tickMsg time.Time
type dayPollMsg time.Time
type midnightMsg time.Time
type typeMsg struct{ id int }
type storeMsg struct{ key string }
type errMsg struct{ err error }

// New creates the model backed by the Service. events may be nil when
// store watching is unavailable.
func New(svc *app.Service, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command or search"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeIdle,
		input:  ti,
		events: events,
		status: "type to command, enter to run, esc to cancel, ctrl+c to quit",
	}
	m.refresh(time.Now())
	// The first greeting is computed here, not in Init, so the typewriter
	// has its text before the first tick arrives.
	m.greetText = m.svc.Greeting(m.now)
	m.animID = 1
	return m
}

// Init starts the clock, the day-change timers, and the first greeting.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		dayPollCmd(),
		midnightCmd(m.now),
		typeTick(m.animID),
	}
	if m.events != nil {
		cmds = append(cmds, m.waitForStore())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// dayPollCmd backstops the midnight timer against suspend/resume skew.
func dayPollCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg { return dayPollMsg(t) })
}

func midnightCmd(now time.Time) tea.Cmd {
	wait := time.Until(cycle.NextMidnight(now)) + time.Second
	return tea.Tick(wait, func(t time.Time) tea.Msg { return midnightMsg(t) })
}

func typeTick(id int) tea.Cmd {
	return tea.Tick(typeSpeed, func(time.Time) tea.Msg { return typeMsg{id: id} })
}

func (m *Model) waitForStore() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeMsg{key: ev.Key}
	}
}

// refresh re-reads everything derived from the store and the clock.
func (m *Model) refresh(now time.Time) {
	m.now = now
	m.dayKey = cycle.DayKey(now)
	m.currentDay = m.svc.CurrentDay(now)
	m.weekend = cycle.IsWeekend(now)
	m.snap = m.svc.Style()
	m.cells = m.svc.Cells(now)
}

// beginGreeting restarts the typewriter with a freshly computed message.
// Bumping animID orphans any tick from the previous animation.
func (m *Model) beginGreeting() tea.Cmd {
	m.greetText = m.svc.Greeting(m.now)
	m.greetShown = 0
	m.animID++
	return typeTick(m.animID)
}

func (m *Model) enterTyping(initial string) tea.Cmd {
	m.mode = modeTyping
	m.animID++
	m.input.SetValue(initial)
	m.input.CursorEnd()
	var cmds []tea.Cmd
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, textinput.Blink)
	return tea.Batch(cmds...)
}

func (m *Model) exitTyping() tea.Cmd {
	m.mode = modeIdle
	m.input.Reset()
	m.input.Blur()
	return m.beginGreeting()
}

func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m.exitTyping()
	}
	if command.Parse(line).Kind == command.KindReset {
		m.mode = modeConfirm
		m.input.Reset()
		m.input.Blur()
		return nil
	}
	return m.runLine(line)
}

func (m *Model) runLine(line string) tea.Cmd {
	action, err := m.svc.Execute(line)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return m.exitTyping()
	}
	return m.applyAction(action)
}

func (m *Model) applyAction(action command.Action) tea.Cmd {
	switch action.Kind {
	case command.ActionRefresh:
		m.refresh(m.now)
	case command.ActionNavigate:
		url := action.URL
		return tea.Batch(m.exitTyping(), func() tea.Msg {
			if err := browser.OpenURL(url); err != nil {
				return errMsg{err}
			}
			return nil
		})
	case command.ActionReapply:
		if action.Snapshot != nil {
			m.snap = *action.Snapshot
			m.cells = m.svc.Cells(m.now)
		}
	case command.ActionAlert:
		m.mode = modeAlert
		m.alertMsg = action.Message
		m.input.Reset()
		m.input.Blur()
		return nil
	}
	return m.exitTyping()
}

// confirmReset runs the reset with an always-yes hook; the TUI already
// collected the confirmation itself.
func (m *Model) confirmReset() tea.Cmd {
	prev := m.svc.Interpreter.Confirm
	m.svc.Interpreter.Confirm = func(string) bool { return true }
	action, err := m.svc.Execute("/reset")
	m.svc.Interpreter.Confirm = prev
	if err != nil {
		m.status = "ERR: " + err.Error()
		return m.exitTyping()
	}
	m.status = "all settings cleared"
	return m.applyAction(action)
}

// rollover refreshes the page when the calendar date has changed since
// the last render. Safe to call repeatedly within the same day.
func (m *Model) rollover(t time.Time) tea.Cmd {
	if cycle.DayKey(t) == m.dayKey {
		m.now = t
		return nil
	}
	m.refresh(t)
	if m.mode == modeIdle {
		return m.beginGreeting()
	}
	return nil
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		w := m.termWidth - 4
		if w > 16 {
			m.input.SetWidth(w)
		}
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case tickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tickCmd())
	case dayPollMsg:
		cmds = append(cmds, m.rollover(time.Time(msg)), dayPollCmd())
	case midnightMsg:
		cmds = append(cmds, m.rollover(time.Time(msg)), midnightCmd(time.Time(msg)))
	case typeMsg:
		if msg.id == m.animID && m.greetShown < utf8.RuneCountInString(m.greetText) {
			m.greetShown++
			cmds = append(cmds, typeTick(msg.id))
		}
	case storeMsg:
		m.refresh(m.now)
		cmds = append(cmds, m.waitForStore())
	case tea.KeyPressMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAlert:
			m.alertMsg = ""
			cmds = append(cmds, m.exitTyping())
		case modeConfirm:
			switch key {
			case "y", "Y":
				cmds = append(cmds, m.confirmReset())
			default:
				m.status = "reset cancelled"
				cmds = append(cmds, m.exitTyping())
			}
		case modeTyping:
			switch key {
			case "enter":
				cmds = append(cmds, m.submit())
			case "esc":
				cmds = append(cmds, m.exitTyping())
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				if key == "backspace" && m.input.Value() == "" {
					cmds = append(cmds, m.exitTyping())
				}
			}
		case modeIdle:
			// Any printable character focuses the command bar, seeded
			// with that character.
			if utf8.RuneCountInString(key) == 1 {
				cmds = append(cmds, m.enterTyping(key))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders banner, grid, command bar, and status.
func (m Model) View() string {
	th := FromSnapshot(m.snap, m.now)

	var b strings.Builder
	b.WriteString(th.Banner.Render(m.banner(th)))
	b.WriteString("\n\n")
	b.WriteString(m.grid(th))
	b.WriteString("\n\n")
	b.WriteString(m.bar(th))
	b.WriteString("\n\n")
	b.WriteString(th.Status.Render(m.status))
	return b.String()
}

func (m Model) banner(th Theme) string {
	clock := m.now.Format("15:04:05")
	if m.snap.ClockMode == "12" {
		clock = m.now.Format("3:04:05 PM")
	}

	day := "Weekend"
	if !m.weekend {
		day = fmt.Sprintf("Day %d of %d", m.currentDay, cycle.Length)
	}
	if p := schedule.PeriodAt(m.now); p >= 0 && !m.weekend {
		day += fmt.Sprintf(", period %d", p)
	}

	date := m.now.Format("Monday, 2 January")
	return th.Clock.Render(clock) + "\n" + th.Date.Render(date+"  "+day)
}

func (m Model) grid(th Theme) string {
	rows := make([]string, 0, schedule.Days)
	period := schedule.PeriodAt(m.now)

	for d := 0; d < schedule.Days; d++ {
		label := fmt.Sprintf("D%-2d", d+1)
		if !m.weekend && d == m.currentDay-1 {
			label = "» " + label
		} else {
			label = "  " + label
		}

		cols := make([]string, 0, schedule.Slots+1)
		cols = append(cols, th.DayLabel.Render(label))
		for p := 0; p < schedule.Slots; p++ {
			cols = append(cols, m.cell(th, m.cells[d][p], p == period))
		}
		rows = append(rows, strings.Join(cols, " "))
	}
	return strings.Join(rows, "\n")
}

func (m Model) cell(th Theme, c schedule.Cell, nowSlot bool) string {
	text := c.Subject
	switch c.Subject {
	case schedule.None:
		return th.CellBlank.Render(fmt.Sprintf("%-6s", "·"))
	case schedule.DoubleCode:
		text = "″"
	}
	if schedule.IsPlaceholder(c.Subject) {
		text = "?"
	}

	st := lipgloss.NewStyle()
	if c.Colour != "" {
		st = st.Foreground(lipgloss.Color(c.Colour))
	}
	switch {
	case c.IsCurrentDay:
		st = st.Inherit(th.CellCurrent)
		if nowSlot {
			st = st.Underline(true)
		}
	case c.IsOther:
		st = st.Inherit(th.CellOther)
	}
	return st.Render(fmt.Sprintf("%-6s", text))
}

func (m Model) bar(th Theme) string {
	switch m.mode {
	case modeTyping:
		return th.BarCommand.Render("> ") + m.input.View()
	case modeConfirm:
		return th.BarCommand.Render("clear ALL settings? [y/N]")
	case modeAlert:
		return th.Alert.Render(m.alertMsg + "\n\npress any key")
	default:
		shown := []rune(m.greetText)
		if m.greetShown < len(shown) {
			shown = shown[:m.greetShown]
		}
		return th.Bar.Render(string(shown))
	}
}

// Run is the program entry used by the ui command.
func Run(svc *app.Service) error {
	ctx := context.Background()
	events, err := svc.Watch(ctx)
	if err != nil {
		events = nil
	}
	p := tea.NewProgram(New(svc, events), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
