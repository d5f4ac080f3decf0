package command

import "tableflip.dev/daygrid/pkg/style"

// ActionKind is the follow-up the caller performs after a command.
type ActionKind int

const (
	// ActionNone means nothing changed that the renderer cares about.
	ActionNone ActionKind = iota
	// ActionRefresh asks the caller to re-resolve the schedule and
	// re-render in place. It replaces the page reload the command set
	// historically triggered.
	ActionRefresh
	// ActionNavigate opens a URL.
	ActionNavigate
	// ActionReapply repaints with the attached style snapshot, no
	// schedule recomputation needed.
	ActionReapply
	// ActionAlert surfaces a blocking message.
	ActionAlert
)

// Action is the interpreter's result. All persisted writes are flushed
// before an Action is returned, so a Navigate never races a write.
type Action struct {
	Kind     ActionKind
	URL      string
	Message  string
	Snapshot *style.Snapshot
}

func none() Action               { return Action{Kind: ActionNone} }
func refresh() Action            { return Action{Kind: ActionRefresh} }
func navigate(url string) Action { return Action{Kind: ActionNavigate, URL: url} }
func alert(msg string) Action    { return Action{Kind: ActionAlert, Message: msg} }

func reapply(snap style.Snapshot) Action {
	return Action{Kind: ActionReapply, Snapshot: &snap}
}
