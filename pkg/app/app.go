// Package app provides the high-level service the CLI and TUI share.
// It wraps persistence, settings, schedule resolution, and the command
// interpreter so both surfaces run the same logic.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daygrid/pkg/command"
	"tableflip.dev/daygrid/pkg/cycle"
	"tableflip.dev/daygrid/pkg/greeting"
	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/settings"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/style"
)

// Service bundles the stores and engines behind the start page.
type Service struct {
	Persistence store.Persistence
	Settings    *settings.Settings
	Interpreter *command.Interpreter
}

// New builds a Service over the given persistence. The interpreter
// starts with no confirmation hook, so destructive commands decline
// until the caller wires one.
func New(p store.Persistence) *Service {
	s := settings.New(p)
	return &Service{
		Persistence: p,
		Settings:    s,
		Interpreter: &command.Interpreter{Settings: s},
	}
}

// Resolved flattens the base cycle through the stored block assignment
// and insert overrides.
func (s *Service) Resolved() schedule.Resolved {
	return schedule.Resolve(schedule.Base, s.Settings.Blocks(), s.Settings.Inserts())
}

// CurrentDay is the cycle day the grid highlights for now.
func (s *Service) CurrentDay(now time.Time) int {
	return cycle.CurrentDay(now)
}

// Cells produces the fully resolved render cells for now: subjects,
// icons, colours, and current-day flags.
func (s *Service) Cells(now time.Time) [schedule.Days][schedule.Slots]schedule.Cell {
	snap := s.Style()
	return s.Resolved().Cells(
		cycle.CurrentDay(now),
		cycle.IsWeekend(now),
		snap.CellColours,
		snap.CellColour,
	)
}

// Style returns the current merged style snapshot.
func (s *Service) Style() style.Snapshot {
	return style.Current(s.Settings)
}

// Greeting computes the idle-bar message for now. It may stamp the
// help tip flag, at most once per day.
func (s *Service) Greeting(now time.Time) string {
	m := greeting.Machine{Settings: s.Settings}
	return m.Greet(now)
}

// Execute runs one typed line through the command interpreter.
func (s *Service) Execute(line string) (command.Action, error) {
	if s.Interpreter == nil {
		return command.Action{}, errors.New("app: no interpreter configured")
	}
	return s.Interpreter.Execute(line)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
