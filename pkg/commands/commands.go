package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

// New builds the daygrid root command.
func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daygrid",
		Short: base.Wrap80("A terminal start page: recurring school timetable, clock, and a command bar."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every subcommand to the root.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addRun(topLevel)
	addSchedule(topLevel)
	addGreeting(topLevel)
	addStyles(topLevel)
	addShortcuts(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}
