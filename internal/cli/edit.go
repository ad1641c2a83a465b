package cli

import (
	"flag"
	"fmt"
	"io"
)

// runEdit builds the handler for the edit command.
func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
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
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one form id")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		e, err := newEnv(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		formID, err := e.requireForm(flags.Arg(0))
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
		if !decision.useLive {
			f, _ := e.store.GetForm(formID)
			printFormDetail(stdout, f)
			return ExitOK
		}
		if err := openBuilder(e, formID, e.cfg.UI.NoColor, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
