package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/store"
)

func addGreeting(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "greeting",
		Short: "Print the idle-bar greeting for right now.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := app.New(p)
			printers.New().Greeting(svc.Greeting(time.Now()))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
