package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/settings"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/style"
)

func addStyles(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List saved style snapshots.",
		Example: `
daygrid styles
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := settings.New(p)

			pp := printers.New()
			pp.Title("Saved styles")
			pp.Styles(style.Saved(s))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
