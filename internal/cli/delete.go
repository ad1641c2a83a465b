package cli

import (
	"flag"
	"fmt"
	"io"
)

// runDelete builds the handler for the delete command. Deleting is
// idempotent: a missing form still exits successfully.
func runDelete(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
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
		formID := flags.Arg(0)
		e.store.DeleteForm(formID)
		fmt.Fprintf(stdout, "Deleted form %s\n", formID)
		return ExitOK
	}
}
