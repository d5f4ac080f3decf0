package schedule

import "sort"

const (
	// Days is the length of the recurring cycle.
	Days = 10
	// Slots is the number of periods per day, P0 through P6.
	Slots = 7
)

// Sentinel subject codes.
const (
	None       = "none"
	DoubleCode = "double"
	FreeCode   = "free"
)

// Base is the hardcoded two-week cycle. Day and slot indices are
// zero-based internally; commands and display use 1-based days.
var Base = [Days][Slots]Slot{
	{NoPeriod(), Block(4), Block(3), Block(2), Block(1), Block(5), Block(6)},
	{NoPeriod(), Block(4), Double(), Block(1), Subject("bib"), Block(5), Block(3)},
	{Block(4), Block(2), Double(), Block(3), Double(), Subject(FreeCode), Subject(FreeCode)},
	{NoPeriod(), Block(5), Double(), Block(3), Subject("chp"), Block(6), Double()},
	{NoPeriod(), Block(1), Double(), Block(4), Block(2), Block(6), Block(5)},
	{NoPeriod(), Block(2), Block(3), Block(5), Block(6), Block(4), Block(1)},
	{NoPeriod(), Block(4), Double(), Block(1), Subject("bib"), Block(3), Block(2)},
	{Block(6), Block(5), Double(), Block(1), Double(), Subject(FreeCode), Subject(FreeCode)},
	{NoPeriod(), Block(6), Double(), Block(2), Subject("chp"), Block(3), Double()},
	{NoPeriod(), Block(6), Block(5), Block(2), Double(), Block(1), Block(4)},
}

// icons maps every known subject code to its display asset. The empty
// string means the cell renders blank. The double sentinel keeps its own
// marker so continuation cells are never confused with empty ones.
var icons = map[string]string{
	None:       "",
	DoubleCode: "assets/double.png",
	"eng":      "assets/eng.png",
	"met":      "assets/met.png",
	"spc":      "assets/spc.png",
	"chm":      "assets/chm.png",
	"bio":      "assets/bio.png",
	"acc":      "assets/acc.png",
	"rev":      "assets/rev.png",
	"phy":      "assets/phy.png",
	"bib":      "assets/bib.png",
	"chp":      "assets/chp.png",
	FreeCode:   "assets/free.png",
	"_ph1":     "assets/ph1.png",
	"_ph2":     "assets/ph2.png",
	"_ph3":     "assets/ph3.png",
	"_ph4":     "assets/ph4.png",
	"_ph5":     "assets/ph5.png",
	"_ph6":     "assets/ph6.png",
	"vet":      "assets/vet.png",
	"cns":      "assets/cns.png",
}

// Known reports whether code is a valid subject code.
func Known(code string) bool {
	_, ok := icons[code]
	return ok
}

// Icon returns the display asset for a subject code, or empty when the
// code has no icon (the none sentinel or an unknown code).
func Icon(code string) string {
	return icons[code]
}

// Subjects returns all known subject codes sorted, including sentinels.
func Subjects() []string {
	out := make([]string, 0, len(icons))
	for code := range icons {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Placeholder returns the placeholder subject code for block n.
var placeholders = map[int]string{
	1: "_ph1", 2: "_ph2", 3: "_ph3", 4: "_ph4", 5: "_ph5", 6: "_ph6",
}

// Placeholder returns the pending-configuration code for block n.
func Placeholder(n int) string { return placeholders[n] }

// IsPlaceholder reports whether a code is one of the block placeholders.
func IsPlaceholder(code string) bool {
	return len(code) == 4 && code[:3] == "_ph"
}

// DefaultBlocks returns the block assignment used before the user runs
// setblock for each of the six blocks.
func DefaultBlocks() map[int]string {
	blocks := make(map[int]string, 6)
	for n := 1; n <= 6; n++ {
		blocks[n] = Placeholder(n)
	}
	return blocks
}
