package schedule

// SlotKind discriminates what a base timetable slot holds before resolution.
type SlotKind int

const (
	// KindNone marks a slot with no period scheduled.
	KindNone SlotKind = iota
	// KindBlock references one of the six user-assignable blocks.
	KindBlock
	// KindSubject names a subject directly.
	KindSubject
	// KindDouble continues the previous period into a double.
	KindDouble
)

// Slot is one entry of the base timetable. The zero value is a free slot
// with no period.
type Slot struct {
	Kind    SlotKind
	Block   int
	Subject string
}

// NoPeriod returns the empty slot.
func NoPeriod() Slot { return Slot{Kind: KindNone} }

// Block returns a slot referencing block n.
func Block(n int) Slot { return Slot{Kind: KindBlock, Block: n} }

// Subject returns a slot with a hardcoded subject code.
func Subject(code string) Slot { return Slot{Kind: KindSubject, Subject: code} }

// Double returns a double-period continuation slot.
func Double() Slot { return Slot{Kind: KindDouble} }
