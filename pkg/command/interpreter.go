package command

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/cycle"
	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/settings"
	"tableflip.dev/daygrid/pkg/style"
)

// Navigation targets.
const (
	searchURLPrefix = "https://www.google.com/search?q="
	// HelpURL is where /help sends the user.
	HelpURL = "https://tableflip.dev/daygrid/help"
)

// SearchURL builds the web-search redirect for a plain text query.
func SearchURL(query string) string {
	return searchURLPrefix + url.QueryEscape(query)
}

// Interpreter executes parsed commands against the settings store.
type Interpreter struct {
	Settings *settings.Settings

	// Confirm gates destructive commands. A nil Confirm declines, which
	// aborts with no state change.
	Confirm func(prompt string) bool

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (i *Interpreter) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

// Execute parses and runs one input line. Invalid input is a silent
// no-op by design; only store failures surface as errors.
func (i *Interpreter) Execute(raw string) (Action, error) {
	return i.Run(Parse(raw))
}

// Run executes an already-parsed command.
func (i *Interpreter) Run(cmd Cmd) (Action, error) {
	switch cmd.Kind {
	case KindEmpty, KindInvalid:
		return none(), nil

	case KindSearch:
		if err := i.Settings.MarkGoodToGo(cycle.DayKey(i.now())); err != nil {
			return none(), err
		}
		return navigate(SearchURL(cmd.Query)), nil

	case KindSetName:
		return none(), i.Settings.SetName(cmd.Name)

	case KindSetBlock:
		if err := i.Settings.SetBlock(cmd.Block, cmd.Subject); err != nil {
			return none(), err
		}
		return refresh(), nil

	case KindInsertP0:
		ins := i.Settings.Inserts()
		ins.P0[cmd.Day] = cmd.Subject
		if err := i.Settings.SetInserts(ins); err != nil {
			return none(), err
		}
		return refresh(), nil

	case KindInsertFree:
		ins := i.Settings.Inserts()
		ins.Free[schedule.FreeKey(cmd.Day, cmd.Period)] = true
		if err := i.Settings.SetInserts(ins); err != nil {
			return none(), err
		}
		return refresh(), nil

	case KindRemove:
		return i.removeInsert(cmd.Day, cmd.Period)

	case KindRemoveAll:
		if err := i.Settings.SetInserts(schedule.NewInserts()); err != nil {
			return none(), err
		}
		return refresh(), nil

	case KindReset:
		if i.Confirm == nil || !i.Confirm("This will reset ALL local data. Are you sure?") {
			return none(), nil
		}
		if err := i.Settings.ResetAll(); err != nil {
			return none(), err
		}
		return refresh(), nil

	case KindHelp:
		if err := i.Settings.MarkHelpTipShown(cycle.DayKey(i.now())); err != nil {
			return none(), err
		}
		return navigate(HelpURL), nil

	case KindSetBGFluid:
		return i.setBG(style.BG{Mode: style.ModeFluid})

	case KindSetBGColour:
		return i.setBG(style.BG{Mode: style.ModeColor, Color: cmd.Hex})

	case KindSetBGImage:
		return i.setBG(style.BG{Mode: style.ModeImage, Image: cmd.Image})

	case KindSetBGParallax:
		snap := style.Current(i.Settings)
		bg := snap.BG
		bg.Parallax = cmd.On
		return i.setBG(bg)

	case KindSetFontFamily:
		return i.setFontFamily(cmd.Family)

	case KindSetFontVar:
		return i.setFontVar(cmd)

	case KindSetClock:
		if cmd.Mode != "12" && cmd.Mode != "24" {
			return alert("Invalid clock format. Use /setclock 12 or /setclock 24."), nil
		}
		if err := i.Settings.SetString(settings.KeyClockMode, cmd.Mode); err != nil {
			return none(), err
		}
		return reapply(style.Current(i.Settings)), nil

	case KindStyleReset:
		if err := style.Reset(i.Settings); err != nil {
			return none(), err
		}
		return reapply(style.Current(i.Settings)), nil

	case KindStyleSave:
		if err := style.Save(i.Settings, cmd.Name); err != nil {
			return none(), err
		}
		return alert(fmt.Sprintf("Style saved as %q.", cmd.Name)), nil

	case KindStyleLoad:
		snap, ok, err := style.Load(i.Settings, cmd.Name)
		if err != nil {
			return none(), err
		}
		if !ok {
			return alert(fmt.Sprintf("Style %q does not exist.", cmd.Name)), nil
		}
		return reapply(snap), nil

	case KindStyleRemove:
		removed, err := style.Remove(i.Settings, cmd.Name)
		if err != nil {
			return none(), err
		}
		if !removed {
			return alert(fmt.Sprintf("Style %q does not exist.", cmd.Name)), nil
		}
		return alert(fmt.Sprintf("Style %q removed.", cmd.Name)), nil

	case KindSetCellColour:
		return i.setCellColour(cmd.Subject, cmd.Hex)

	case KindShortcutOpen:
		shortcuts := i.Settings.Shortcuts()
		link, ok := shortcuts[cmd.Name]
		if !ok {
			return none(), nil
		}
		return navigate(link), nil

	case KindShortcutRemove:
		shortcuts := i.Settings.Shortcuts()
		delete(shortcuts, cmd.Name)
		if err := i.Settings.SetShortcuts(shortcuts); err != nil {
			return none(), err
		}
		return alert(fmt.Sprintf("Shortcut '%s' removed.", cmd.Name)), nil

	case KindShortcutSet:
		shortcuts := i.Settings.Shortcuts()
		shortcuts[cmd.Name] = cmd.URL
		if err := i.Settings.SetShortcuts(shortcuts); err != nil {
			return none(), err
		}
		return alert(fmt.Sprintf("Shortcut '%s' saved → %s", cmd.Name, cmd.URL)), nil
	}

	return none(), nil
}

// removeInsert deletes a p0 insert (period 0 only) and any free insert
// at (day, period). Only a real deletion triggers a refresh.
func (i *Interpreter) removeInsert(day, period int) (Action, error) {
	ins := i.Settings.Inserts()
	changed := false

	if period == 0 {
		if _, ok := ins.P0[day]; ok {
			delete(ins.P0, day)
			changed = true
		}
	}
	key := schedule.FreeKey(day, period)
	if ins.Free[key] {
		delete(ins.Free, key)
		changed = true
	}

	if !changed {
		return none(), nil
	}
	if err := i.Settings.SetInserts(ins); err != nil {
		return none(), err
	}
	return refresh(), nil
}

func (i *Interpreter) setBG(bg style.BG) (Action, error) {
	if err := i.Settings.Save(settings.KeyBG, bg); err != nil {
		return none(), err
	}
	return reapply(style.Current(i.Settings)), nil
}

func (i *Interpreter) setFontFamily(family string) (Action, error) {
	if strings.EqualFold(family, "default") {
		family = style.DefaultFont
	}
	if strings.Contains(family, " ") {
		family = fmt.Sprintf("%q", family)
	}
	if err := i.Settings.SetString(settings.KeyUserFont, family); err != nil {
		return none(), err
	}
	return reapply(style.Current(i.Settings)), nil
}

func (i *Interpreter) setFontVar(cmd Cmd) (Action, error) {
	suffix := "-text-color"
	if cmd.Outline {
		suffix = "-text-outline"
	}

	var keys []string
	if cmd.Target == "all" {
		keys = []string{"search" + suffix, "clock" + suffix, "date" + suffix}
	} else {
		keys = []string{cmd.Target + suffix}
	}

	vars := map[string]string{}
	i.Settings.Load(settings.KeyFontVars, &vars)
	for _, key := range keys {
		value := cmd.Value
		if strings.EqualFold(value, "default") {
			value = style.FontVarDefault(key)
		}
		vars[key] = value
	}
	if err := i.Settings.Save(settings.KeyFontVars, vars); err != nil {
		return none(), err
	}
	return reapply(style.Current(i.Settings)), nil
}

// setCellColour updates one subject's tint, or with "all" the global
// colour plus every subject except the empty sentinel.
func (i *Interpreter) setCellColour(subject, hex string) (Action, error) {
	colours := map[string]string{}
	i.Settings.Load(settings.KeyCellColours, &colours)

	if subject == "all" {
		for _, code := range schedule.Subjects() {
			if code == schedule.None {
				continue
			}
			colours[code] = hex
		}
		if err := i.Settings.SetString(settings.KeyCellColour, hex); err != nil {
			return none(), err
		}
	} else {
		colours[subject] = hex
	}

	if err := i.Settings.Save(settings.KeyCellColours, colours); err != nil {
		return none(), err
	}
	return reapply(style.Current(i.Settings)), nil
}
