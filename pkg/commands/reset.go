package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/command"
	"tableflip.dev/daygrid/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every persisted setting.",
		Example: `
daygrid reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := app.New(p)
			svc.Interpreter.Confirm = confirmFunc(yes)

			action, err := svc.Execute("/reset")
			if err != nil {
				return output.HandleError(err)
			}
			if action.Kind == command.ActionRefresh {
				fmt.Println("all settings cleared")
			} else {
				fmt.Println("aborted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
