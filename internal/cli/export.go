package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"formsmith/internal/export"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		out := flags.String("out", "", "Output file (default: <form-id>.html, \"-\" for stdout)")
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
		f, _ := e.store.GetForm(formID)
		html, err := export.RenderFormHTML(context.Background(), f)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}

		target := strings.TrimSpace(*out)
		if target == "-" {
			fmt.Fprint(stdout, html)
			return ExitOK
		}
		if target == "" {
			target = formID + ".html"
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Error: write %s: %v\n", target, err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}
