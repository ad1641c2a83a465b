package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runNew builds the handler for the new command.
func runNew(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		title := flags.String("title", "Untitled Form", "Form title")
		description := flags.String("description", "", "Form description")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain (default: config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := newEnv(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		decision, err := resolveUIMode(pickUIMode(*uiMode, e), stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		created := e.store.CreateForm(*title, *description)
		if !decision.useLive {
			fmt.Fprintf(stdout, "Created form %s\n", created.ID)
			return ExitOK
		}
		if err := openBuilder(e, created.ID, e.cfg.UI.NoColor, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
