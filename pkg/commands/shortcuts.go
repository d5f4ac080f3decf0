package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/settings"
	"tableflip.dev/daygrid/pkg/store"
)

func addShortcuts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "List hypershortcuts.",
		Example: `
daygrid shortcuts
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := settings.New(p)

			pp := printers.New()
			pp.Title("Hypershortcuts")
			pp.Shortcuts(s.Shortcuts())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
