package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"formsmith/internal/analytics"
)

// runResponses builds the handler for the responses command.
func runResponses(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			printResponses(stdout, f, e.store.Responses(formID))
			summary, err := analytics.SummarizeSnapshot(context.Background(), e.store.Snapshot(), formID)
			if err != nil {
				fmt.Fprintf(stderr, "warning: summary unavailable: %v\n", err)
				return ExitOK
			}
			fmt.Fprintln(stdout)
			printSummary(stdout, summary)
			return ExitOK
		}
		if err := openResponses(e, formID, e.cfg.UI.NoColor, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
