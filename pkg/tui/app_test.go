package tui

import (
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newModel(t *testing.T) Model {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return New(app.New(p), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func key(s string) tea.KeyPressMsg {
	r, _ := utf8.DecodeRuneInString(s)
	return tea.KeyPressMsg{Text: s, Code: r}
}

func TestTypewriterAdvancesAndStops(t *testing.T) {
	m := newModel(t)
	if m.greetText == "" {
		t.Fatal("no greeting computed at startup")
	}

	total := utf8.RuneCountInString(m.greetText)
	for i := 0; i < total; i++ {
		m = update(t, m, typeMsg{id: m.animID})
	}
	if m.greetShown != total {
		t.Fatalf("shown = %d, want %d", m.greetShown, total)
	}

	// Once complete, further ticks change nothing.
	m = update(t, m, typeMsg{id: m.animID})
	if m.greetShown != total {
		t.Fatalf("overrun: shown = %d", m.greetShown)
	}
}

func TestStaleTypeTickIsIgnored(t *testing.T) {
	m := newModel(t)
	m = update(t, m, typeMsg{id: m.animID + 99})
	if m.greetShown != 0 {
		t.Fatalf("stale tick advanced the typewriter to %d", m.greetShown)
	}
}

func TestIdleKeySeedsCommandBar(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("w"))
	if m.mode != modeTyping {
		t.Fatalf("mode = %v, want typing", m.mode)
	}
	if m.input.Value() != "w" {
		t.Fatalf("input = %q, want seeded with the pressed key", m.input.Value())
	}

	// Non-printable keys stay in idle.
	m2 := newModel(t)
	m2 = update(t, m2, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m2.mode != modeIdle {
		t.Fatalf("enter key left idle mode: %v", m2.mode)
	}
}

func TestEscapeRestartsGreeting(t *testing.T) {
	m := newModel(t)
	m = update(t, m, typeMsg{id: m.animID})
	m = update(t, m, key("w"))
	prevID := m.animID

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeIdle {
		t.Fatalf("mode = %v, want idle", m.mode)
	}
	if m.greetShown != 0 {
		t.Fatalf("greeting not restarted: shown = %d", m.greetShown)
	}
	if m.animID == prevID {
		t.Fatal("previous animation not cancelled")
	}
}

func TestEnterExecutesCommand(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("/"))
	m.input.SetValue("/setname Sam")
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeIdle {
		t.Fatalf("mode = %v, want idle after execute", m.mode)
	}
	if got := m.svc.Settings.Name(); got != "Sam" {
		t.Fatalf("name = %q, want Sam", got)
	}
}

func TestResetAsksForConfirmation(t *testing.T) {
	m := newModel(t)
	if err := m.svc.Settings.SetName("Sam"); err != nil {
		t.Fatalf("seed name: %v", err)
	}

	m = update(t, m, key("/"))
	m.input.SetValue("/reset")
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeConfirm {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}

	// Anything but y declines.
	m = update(t, m, key("n"))
	if m.mode != modeIdle {
		t.Fatalf("mode after decline = %v", m.mode)
	}
	if m.svc.Settings.Name() != "Sam" {
		t.Fatal("declined reset cleared data")
	}

	m = update(t, m, key("/"))
	m.input.SetValue("/reset")
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = update(t, m, key("y"))
	if m.svc.Settings.Name() != "" {
		t.Fatal("confirmed reset kept data")
	}
	if m.mode != modeIdle {
		t.Fatalf("mode after confirm = %v", m.mode)
	}
}

func TestAlertDismissesOnAnyKey(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key("/"))
	m.input.SetValue("/setclock 13")
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeAlert {
		t.Fatalf("mode = %v, want alert", m.mode)
	}
	if m.alertMsg == "" {
		t.Fatal("alert with no message")
	}

	m = update(t, m, key("x"))
	if m.mode != modeIdle {
		t.Fatalf("mode after dismiss = %v", m.mode)
	}
}

func TestRolloverOnlyRefreshesOnDayChange(t *testing.T) {
	m := newModel(t)
	sameDay := m.now.Add(time.Minute)
	prevKey := m.dayKey

	m = update(t, m, dayPollMsg(sameDay))
	if m.dayKey != prevKey {
		t.Fatalf("day key changed within the same day: %q", m.dayKey)
	}

	nextDay := m.now.AddDate(0, 0, 1)
	m = update(t, m, midnightMsg(nextDay))
	if m.dayKey == prevKey {
		t.Fatal("day key not updated after midnight")
	}
	// The backstop poll after midnight must not refresh again.
	rolled := m.dayKey
	m = update(t, m, dayPollMsg(nextDay.Add(time.Minute)))
	if m.dayKey != rolled {
		t.Fatalf("redundant rollover changed state: %q", m.dayKey)
	}
}

func TestViewRendersGridAndBar(t *testing.T) {
	m := newModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	// Ten day rows plus banner and bar.
	if got := len([]rune(out)); got < 100 {
		t.Fatalf("suspiciously small view: %d runes", got)
	}
}
