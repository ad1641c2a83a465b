// Package cli wires the formsmith commands: thin glue that loads the
// store, runs one screen or prints plain output, and exits. All form
// mutations happen through the store's operations.
package cli

import (
	"fmt"
	"io"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one formsmith subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches the arguments to a command.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  formsmith <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"formsmith <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold the .formsmith config", []string{
		"formsmith init [--dir <path>]",
	}, runInit),
	command("dashboard", "Browse forms and open screens", []string{
		"formsmith dashboard [--ui auto|live|plain]",
	}, runDashboard),
	command("list", "List forms newest-first", []string{
		"formsmith list",
	}, runList),
	command("new", "Create a form and open the builder", []string{
		"formsmith new [--title <text>] [--description <text>] [--ui auto|live|plain]",
	}, runNew),
	command("edit", "Edit a form in the builder", []string{
		"formsmith edit <form-id>",
	}, runEdit),
	command("preview", "Fill a form the way respondents see it", []string{
		"formsmith preview <form-id>",
	}, runPreview),
	command("responses", "Show a form's submissions", []string{
		"formsmith responses <form-id> [--ui auto|live|plain]",
	}, runResponses),
	command("submit", "Record a response from the command line", []string{
		"formsmith submit <form-id> --answer <question-id>=<value> [--answer ...]",
	}, runSubmit),
	command("stats", "Print answer distributions for a form", []string{
		"formsmith stats <form-id>",
	}, runStats),
	command("export", "Render a form as a standalone HTML page", []string{
		"formsmith export <form-id> [--out <path>]",
	}, runExport),
	command("delete", "Delete a form and its responses", []string{
		"formsmith delete <form-id>",
	}, runDelete),
}
