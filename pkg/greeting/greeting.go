// Package greeting decides what the idle command bar says. It is a
// strict-priority state machine over the persisted onboarding flags and
// the current time; the only side effect is stamping the help tip as
// shown, at most once per calendar day.
package greeting

import (
	"fmt"
	"time"

	"tableflip.dev/daygrid/pkg/cycle"
	"tableflip.dev/daygrid/pkg/settings"
)

// Onboarding prompts, surfaced before any time-based message.
const (
	PromptSetName  = "Tip: Start typing '/setname [name]' to register your name!"
	PromptSetBlock = "Tip: Use '/setblock [block] [subject]' to set your subjects! Try '/help' for more."
	PromptHelpTip  = "Tip: Try '/help'! For setting up extra p0s and frees."
	PromptGoodToGo = "Just start typing to browse the web!"
)

// Machine evaluates the idle greeting against persisted state.
type Machine struct {
	Settings *settings.Settings
}

// Greet returns the message the idle input bar should type out for now.
// Showing the help tip stamps it as shown for the day.
func (m *Machine) Greet(now time.Time) string {
	name := m.Settings.Name()
	if name == "" {
		return PromptSetName
	}

	if !m.Settings.BlocksSet() {
		return PromptSetBlock
	}

	today := cycle.DayKey(now)
	if !m.Settings.HelpTipShown(today) {
		// Shown once per day; displaying it counts as showing it.
		_ = m.Settings.MarkHelpTipShown(today)
		return PromptHelpTip
	}

	if !m.Settings.GoodToGoSeen(today) {
		return PromptGoodToGo
	}

	return TimeMessage(now, name)
}

// TimeMessage picks the time-of-day greeting for a fully onboarded
// user. Weekend wins over every hourly range; ranges are half-open.
func TimeMessage(now time.Time, name string) string {
	if cycle.IsWeekend(now) {
		return fmt.Sprintf("Enjoy the weekend, %s!", name)
	}

	hours := now.Hour()
	minutes := now.Minute()
	mins := hours*60 + minutes

	switch {
	case hours < 2:
		return fmt.Sprintf("On the late night grind, %s?", name)
	case hours < 6:
		return fmt.Sprintf("%s! GO! TO! BED!", name)
	case hours < 8:
		return fmt.Sprintf("Up and early, %s!", name)
	case hours == 8 || (hours == 9 && minutes < 15):
		return fmt.Sprintf("Good morning, %s!", name)
	case mins >= 685 && mins < 745:
		return fmt.Sprintf("Waiting for lunch, aren'tcha, %s?", name)
	case mins >= 555 && mins < 745:
		return fmt.Sprintf("Great day ahead, %s!", name)
	case mins >= 795 && mins < 835:
		return fmt.Sprintf("Whadya have for lunch, %s?", name)
	case mins >= 835 && mins < 885:
		return fmt.Sprintf("Hope you're ready for more, %s!!", name)
	case mins >= 885 && mins < 935:
		return "Final stretch! Go, go, go!"
	case mins >= 935 && mins < 1000:
		return "YOU MADE IT!! WOOOH!!!!"
	case hours >= 16 && hours < 19:
		return fmt.Sprintf("Howdy, %s!", name)
	case hours >= 22:
		return fmt.Sprintf("Late night study vibes, %s?", name)
	case hours >= 19:
		return fmt.Sprintf("Good evening, %s!", name)
	default:
		return fmt.Sprintf("Hello, %s!", name)
	}
}
