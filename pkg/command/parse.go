// Package command turns typed input lines into validated mutations of
// the persisted start-page state. Parsing is permissive on purpose:
// anything that does not match the grammar becomes an explicit Invalid
// command, which executes as a silent no-op.
package command

import (
	"strconv"
	"strings"

	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/style"
)

// Kind tags the parsed command variant.
type Kind int

const (
	// KindInvalid is any line that fails grammar or static validation.
	KindInvalid Kind = iota
	// KindEmpty is blank input.
	KindEmpty
	// KindSearch is plain text delegated to a web search.
	KindSearch
	KindSetName
	KindSetBlock
	KindInsertP0
	KindInsertFree
	KindRemove
	KindRemoveAll
	KindReset
	KindHelp
	KindSetBGFluid
	KindSetBGColour
	KindSetBGImage
	KindSetBGParallax
	KindSetFontFamily
	KindSetFontVar
	KindSetClock
	KindStyleReset
	KindStyleSave
	KindStyleLoad
	KindStyleRemove
	KindSetCellColour
	KindShortcutOpen
	KindShortcutSet
	KindShortcutRemove
)

// Cmd is one parsed command with its typed payload. Only the fields
// relevant to the Kind are set.
type Cmd struct {
	Kind Kind

	Query   string // search
	Name    string // setname, style save/load/remove, shortcuts
	Subject string // setblock, insert p0, setcell
	Block   int    // setblock
	Day     int    // inserts, remove
	Period  int    // insert free, remove
	Hex     string // setbg colour, setcell colour
	Image   string // setbg img
	On      bool   // setbg parallax
	Family  string // setfont family
	Outline bool   // setfont outline (vs colour)
	Target  string // setfont colour/outline target
	Value   string // setfont colour/outline value
	Mode    string // setclock, raw so invalid modes can alert
	URL     string // shortcut set
}

func invalid() Cmd { return Cmd{Kind: KindInvalid} }

// Parse tokenizes and statically validates one input line. Dynamic
// checks that need store state (does this style exist?) belong to the
// interpreter.
func Parse(raw string) Cmd {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Cmd{Kind: KindEmpty}
	}

	if strings.HasPrefix(value, "//") {
		return parseShortcut(value)
	}
	if strings.HasPrefix(value, "/") {
		return parseSlash(value)
	}
	return Cmd{Kind: KindSearch, Query: value}
}

func parseShortcut(value string) Cmd {
	parts := strings.Fields(strings.TrimSpace(value[2:]))
	if len(parts) == 0 {
		return invalid()
	}
	name := parts[0]
	link := strings.Join(parts[1:], " ")
	switch {
	case link == "":
		return Cmd{Kind: KindShortcutOpen, Name: name}
	case strings.EqualFold(link, "remove"):
		return Cmd{Kind: KindShortcutRemove, Name: name}
	default:
		return Cmd{Kind: KindShortcutSet, Name: name, URL: link}
	}
}

func parseSlash(value string) Cmd {
	parts := strings.Split(value, " ")
	switch parts[0] {
	case "/setname":
		name := strings.TrimSpace(strings.Join(parts[1:], " "))
		if name == "" {
			return invalid()
		}
		return Cmd{Kind: KindSetName, Name: name}

	case "/setblock":
		if len(parts) < 3 {
			return invalid()
		}
		block, err := strconv.Atoi(parts[1])
		subject := strings.ToLower(parts[2])
		if err != nil || block < 1 || block > 6 || !schedule.Known(subject) {
			return invalid()
		}
		return Cmd{Kind: KindSetBlock, Block: block, Subject: subject}

	case "/insert":
		return parseInsert(parts)

	case "/remove":
		return parseRemove(parts)

	case "/reset":
		return Cmd{Kind: KindReset}

	case "/help":
		return Cmd{Kind: KindHelp}

	case "/setbg":
		return parseSetBG(parts)

	case "/setfont":
		return parseSetFont(parts)

	case "/setclock":
		if len(parts) < 2 {
			return invalid()
		}
		return Cmd{Kind: KindSetClock, Mode: strings.TrimSpace(parts[1])}

	case "/style":
		return parseStyle(parts)

	case "/setcell":
		return parseSetCell(parts)
	}
	return invalid()
}

func parseInsert(parts []string) Cmd {
	if len(parts) < 4 {
		return invalid()
	}
	switch parts[1] {
	case "p0":
		subject := strings.ToLower(parts[2])
		day, err := strconv.Atoi(parts[3])
		if err != nil || day < 1 || day > schedule.Days || !schedule.Known(subject) {
			return invalid()
		}
		return Cmd{Kind: KindInsertP0, Subject: subject, Day: day}
	case "free":
		day, err1 := strconv.Atoi(parts[2])
		period, err2 := strconv.Atoi(parts[3])
		if err1 != nil || err2 != nil ||
			day < 1 || day > schedule.Days ||
			period < 0 || period > schedule.Slots-1 {
			return invalid()
		}
		return Cmd{Kind: KindInsertFree, Day: day, Period: period}
	}
	return invalid()
}

func parseRemove(parts []string) Cmd {
	if len(parts) >= 2 && parts[1] == "all" {
		return Cmd{Kind: KindRemoveAll}
	}
	if len(parts) < 3 {
		return invalid()
	}
	day, err1 := strconv.Atoi(parts[1])
	period, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return invalid()
	}
	return Cmd{Kind: KindRemove, Day: day, Period: period}
}

func parseSetBG(parts []string) Cmd {
	if len(parts) < 2 {
		return invalid()
	}
	switch parts[1] {
	case "fluid":
		return Cmd{Kind: KindSetBGFluid}
	case "colour":
		if len(parts) < 3 {
			return invalid()
		}
		hex, ok := style.NormalizeHex(parts[2])
		if !ok {
			return invalid()
		}
		return Cmd{Kind: KindSetBGColour, Hex: hex}
	case "img":
		if len(parts) < 3 {
			return invalid()
		}
		return Cmd{Kind: KindSetBGImage, Image: parts[2]}
	case "parallax":
		if len(parts) < 3 {
			return invalid()
		}
		switch strings.ToLower(parts[2]) {
		case "true":
			return Cmd{Kind: KindSetBGParallax, On: true}
		case "false":
			return Cmd{Kind: KindSetBGParallax, On: false}
		}
	}
	return invalid()
}

func parseSetFont(parts []string) Cmd {
	if len(parts) < 2 {
		return invalid()
	}
	switch parts[1] {
	case "family":
		if len(parts) < 3 {
			return invalid()
		}
		family := strings.TrimSpace(strings.Join(parts[2:], " "))
		if family == "" {
			return invalid()
		}
		return Cmd{Kind: KindSetFontFamily, Family: family}
	case "colour", "outline":
		if len(parts) < 4 {
			return invalid()
		}
		target := strings.ToLower(parts[2])
		switch target {
		case "search", "clock", "date", "all":
		default:
			return invalid()
		}
		value := strings.TrimSpace(strings.Join(parts[3:], " "))
		if value == "" {
			return invalid()
		}
		return Cmd{
			Kind:    KindSetFontVar,
			Outline: parts[1] == "outline",
			Target:  target,
			Value:   value,
		}
	}
	return invalid()
}

func parseStyle(parts []string) Cmd {
	if len(parts) < 2 {
		return invalid()
	}
	name := strings.TrimSpace(strings.Join(parts[2:], " "))
	switch parts[1] {
	case "reset":
		return Cmd{Kind: KindStyleReset}
	case "save":
		if name == "" {
			return invalid()
		}
		return Cmd{Kind: KindStyleSave, Name: name}
	case "load":
		if name == "" {
			return invalid()
		}
		return Cmd{Kind: KindStyleLoad, Name: name}
	case "remove":
		if name == "" {
			return invalid()
		}
		return Cmd{Kind: KindStyleRemove, Name: name}
	}
	return invalid()
}

func parseSetCell(parts []string) Cmd {
	if len(parts) < 4 || parts[1] != "colour" {
		return invalid()
	}
	subject := strings.ToLower(parts[2])
	hex, ok := style.NormalizeHex(parts[3])
	if !ok {
		return invalid()
	}
	if subject != "all" && !schedule.Known(subject) {
		return invalid()
	}
	return Cmd{Kind: KindSetCellColour, Subject: subject, Hex: hex}
}
