package printers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/style"
)

// PrettyPrint renders schedules, styles, and shortcuts for the CLI.
type PrettyPrint struct {
	NoColor bool

	profile termenv.Profile
}

// New returns a printer, with color disabled when stdout is not a TTY.
func New() *PrettyPrint {
	pp := &PrettyPrint{profile: termenv.ColorProfile()}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pp.NoColor = true
		color.NoColor = true
		pp.profile = termenv.Ascii
	}
	return pp
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Schedule prints the resolved cycle as a table, one row per day. The
// current day row is marked; on weekends no day is.
func (pp *PrettyPrint) Schedule(cells [schedule.Days][schedule.Slots]schedule.Cell) {
	table := uitable.New()
	table.Wrap = false

	header := []interface{}{""}
	for p := 0; p < schedule.Slots; p++ {
		header = append(header, fmt.Sprintf("P%d", p))
	}
	table.AddRow(header...)

	for d := 0; d < schedule.Days; d++ {
		label := fmt.Sprintf("Day %d", d+1)
		if cells[d][0].IsCurrentDay {
			label = "» " + label
		}
		row := []interface{}{label}
		for p := 0; p < schedule.Slots; p++ {
			row = append(row, pp.cell(cells[d][p]))
		}
		table.AddRow(row...)
	}

	fmt.Println(table)
}

func (pp *PrettyPrint) cell(c schedule.Cell) string {
	if c.Icon == "" {
		return "·"
	}
	text := c.Subject
	if c.Subject == schedule.DoubleCode {
		text = "″"
	}
	if pp.NoColor || c.Colour == "" {
		return text
	}
	return termenv.String(text).Foreground(pp.profile.Color(c.Colour)).String()
}

// Styles prints the saved style snapshots with colour swatches.
func (pp *PrettyPrint) Styles(saved map[string]style.Snapshot) {
	if len(saved) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	names := make([]string, 0, len(saved))
	for name := range saved {
		names = append(names, name)
	}
	sort.Strings(names)

	table := uitable.New()
	table.AddRow("NAME", "FONT", "BG", "CLOCK", "CELL")
	for _, name := range names {
		snap := saved[name]
		table.AddRow(name, snap.UserFont, pp.bg(snap.BG), snap.ClockMode, pp.swatch(snap.CellColour))
	}
	fmt.Println(table)
}

func (pp *PrettyPrint) bg(bg style.BG) string {
	switch bg.Mode {
	case style.ModeColor:
		return "colour " + pp.swatch(bg.Color)
	case style.ModeImage:
		return "img " + bg.Image
	default:
		return style.ModeFluid
	}
}

func (pp *PrettyPrint) swatch(hex string) string {
	if pp.NoColor || hex == "" {
		return hex
	}
	block := termenv.String("██").Foreground(pp.profile.Color(hex)).String()
	return block + " " + hex
}

// Shortcuts prints the hypershortcut table.
func (pp *PrettyPrint) Shortcuts(shortcuts map[string]string) {
	if len(shortcuts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)

	table := uitable.New()
	table.AddRow("SHORTCUT", "URL")
	for _, name := range names {
		table.AddRow("//"+name, shortcuts[name])
	}
	fmt.Println(table)
}

// Greeting prints the idle-bar message the TUI would type out.
func (pp *PrettyPrint) Greeting(msg string) {
	g := color.New(color.Italic)
	_, _ = g.Println(strings.TrimSpace(msg))
}
