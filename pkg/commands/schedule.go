package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/cycle"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/schedule"
	"tableflip.dev/daygrid/pkg/store"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schedule [day]",
		Short: "Print the resolved timetable cycle.",
		Example: `
daygrid schedule
daygrid schedule 3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := app.New(p)
			now := time.Now()

			pp := printers.New()

			// An explicit day marks that row instead of today's.
			if len(args) == 1 {
				day, err := strconv.Atoi(args[0])
				if err != nil || day < 1 || day > schedule.Days {
					return fmt.Errorf("day must be 1 through %d", schedule.Days)
				}
				snap := svc.Style()
				cells := svc.Resolved().Cells(day, false, snap.CellColours, snap.CellColour)
				pp.Title(fmt.Sprintf("Day %d", day))
				pp.Schedule(cells)
				return nil
			}

			if cycle.IsWeekend(now) {
				pp.Title("Weekend")
			} else {
				pp.Title(fmt.Sprintf("Day %d", svc.CurrentDay(now)))
			}
			pp.Schedule(svc.Cells(now))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
