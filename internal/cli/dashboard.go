package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// runDashboard builds the handler for the dashboard command.
func runDashboard(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if !decision.useLive {
			printFormList(stdout, e.store.Forms(), time.Now())
			return ExitOK
		}
		if err := openDashboard(e, e.cfg.UI.NoColor, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// pickUIMode prefers the command-line mode over the config's.
func pickUIMode(flagMode string, e *env) string {
	if strings.TrimSpace(flagMode) != "" {
		return flagMode
	}
	return e.cfg.UI.Mode
}
