package schedule

import "fmt"

// Inserts holds the user overrides layered on top of the base cycle.
// P0 maps 1-based cycle day to a subject forced into slot 0. Free marks
// "day-period" keys whose slot is forced to the free subject.
type Inserts struct {
	P0   map[int]string  `json:"p0"`
	Free map[string]bool `json:"free"`
}

// NewInserts returns an empty override set with both maps allocated.
func NewInserts() Inserts {
	return Inserts{P0: map[int]string{}, Free: map[string]bool{}}
}

// FreeKey builds the persisted key for a free insert at (day, period),
// day 1-based.
func FreeKey(day, period int) string {
	return fmt.Sprintf("%d-%d", day, period)
}

// Resolved is the concrete cycle: every slot reduced to a subject code
// or sentinel.
type Resolved [Days][Slots]string

// Resolve flattens the base cycle through the block assignment and the
// insert overrides. Precedence per slot, first match wins: p0 insert
// (slot 0 only), free insert, block lookup, pass-through. Unassigned
// blocks resolve to their placeholder code.
func Resolve(base [Days][Slots]Slot, blocks map[int]string, ins Inserts) Resolved {
	var out Resolved
	for d := 0; d < Days; d++ {
		day := d + 1
		for p := 0; p < Slots; p++ {
			slot := base[d][p]

			if p == 0 {
				if subj, ok := ins.P0[day]; ok {
					out[d][p] = subj
					continue
				}
			}

			if ins.Free[FreeKey(day, p)] {
				out[d][p] = FreeCode
				continue
			}

			switch slot.Kind {
			case KindBlock:
				subj := blocks[slot.Block]
				if subj == "" {
					subj = Placeholder(slot.Block)
				}
				out[d][p] = subj
			case KindSubject:
				out[d][p] = slot.Subject
			case KindDouble:
				out[d][p] = DoubleCode
			default:
				out[d][p] = None
			}
		}
	}
	return out
}

// Cell is one rendered timetable slot, everything the renderer needs.
type Cell struct {
	Subject      string
	Icon         string
	Colour       string
	IsCurrentDay bool
	IsOther      bool
}

// Cells maps the resolved cycle to render cells. currentDay is 1-based;
// on weekends no day is highlighted or dimmed. Per-subject colours win
// over the global cell colour.
func (r Resolved) Cells(currentDay int, weekend bool, colours map[string]string, global string) [Days][Slots]Cell {
	var out [Days][Slots]Cell
	for d := 0; d < Days; d++ {
		for p := 0; p < Slots; p++ {
			subj := r[d][p]
			c := Cell{Subject: subj, Icon: Icon(subj)}
			if c.Icon != "" {
				if col, ok := colours[subj]; ok && col != "" {
					c.Colour = col
				} else {
					c.Colour = global
				}
			}
			if !weekend {
				if d == currentDay-1 {
					c.IsCurrentDay = true
				} else {
					c.IsOther = true
				}
			}
			out[d][p] = c
		}
	}
	return out
}
