package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/command"
	"tableflip.dev/daygrid/pkg/store"
)

const runHelp = `Execute one start-page command line without opening the UI.

Anything the command bar accepts works here: /setname, /setblock,
/insert p0|free, /remove, /setbg, /setfont, /setclock, /setcell,
/style save|load|remove|reset, //shortcut handling, and plain text,
which becomes a web search. Invalid input is a silent no-op, same as
in the UI.`

func addRun(topLevel *cobra.Command) {
	open := false
	yes := false

	cmd := &cobra.Command{
		Use:   "run <line>",
		Short: "Execute one command line headless.",
		Long:  indent.String(wordwrap.String(runHelp, 78), 0),
		Example: `
daygrid run "/setblock 3 eng"
daygrid run "/insert free 3 2"
daygrid run --open "//mail"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected a command line to run")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := app.New(p)
			svc.Interpreter.Confirm = confirmFunc(yes)

			action, err := svc.Execute(strings.Join(args, " "))
			if err != nil {
				return output.HandleError(err)
			}

			switch action.Kind {
			case command.ActionNone:
				fmt.Println("ok (no change)")
			case command.ActionRefresh:
				fmt.Println("ok (schedule updated)")
			case command.ActionReapply:
				fmt.Println("ok (style updated)")
			case command.ActionAlert:
				fmt.Println(action.Message)
			case command.ActionNavigate:
				if open {
					return output.HandleError(browser.OpenURL(action.URL))
				}
				fmt.Println(action.URL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open navigation results in the browser.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Answer yes to confirmation prompts.")

	topLevel.AddCommand(cmd)
}

// confirmFunc builds the destructive-command gate: --yes skips the
// prompt, otherwise the terminal asks.
func confirmFunc(yes bool) func(string) bool {
	if yes {
		return func(string) bool { return true }
	}
	return func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
