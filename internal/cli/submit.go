package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"formsmith/internal/form"
)

// answerPair is one --answer question-id=value argument.
type answerPair struct {
	questionID string
	value      string
}

// answerFlag collects repeated --answer arguments in order.
type answerFlag struct {
	pairs []answerPair
}

func (a *answerFlag) String() string {
	parts := make([]string, 0, len(a.pairs))
	for _, p := range a.pairs {
		parts = append(parts, p.questionID+"="+p.value)
	}
	return strings.Join(parts, ",")
}

func (a *answerFlag) Set(raw string) error {
	questionID, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(questionID) == "" {
		return fmt.Errorf("expected <question-id>=<value>, got %q", raw)
	}
	a.pairs = append(a.pairs, answerPair{questionID: strings.TrimSpace(questionID), value: value})
	return nil
}

// runSubmit builds the handler for the submit command.
func runSubmit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var answers answerFlag
		flags.Var(&answers, "answer", "Answer as <question-id>=<value>; repeat for more (checkbox values accumulate)")
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

		assembled, err := assembleAnswers(f, answers.pairs)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		if err := e.store.SubmitResponse(formID, assembled); err != nil {
			var verr *form.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(stderr, "Missing required answers: %s\n", strings.Join(verr.Missing, ", "))
				return ExitError
			}
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Recorded response for form %s\n", formID)
		return ExitOK
	}
}

// assembleAnswers folds the flat --answer pairs into one answer per
// question. Checkbox questions accumulate values; other types keep
// the last value given.
func assembleAnswers(f form.Form, pairs []answerPair) ([]form.Answer, error) {
	types := make(map[string]form.QuestionType, len(f.Questions))
	for _, q := range f.Questions {
		types[q.ID] = q.Type
	}
	var answers []form.Answer
	index := make(map[string]int)
	for _, p := range pairs {
		qt, known := types[p.questionID]
		if !known {
			return nil, fmt.Errorf("form has no question %q", p.questionID)
		}
		i, seen := index[p.questionID]
		if !seen {
			index[p.questionID] = len(answers)
			if qt == form.TypeCheckbox {
				answers = append(answers, form.Answer{QuestionID: p.questionID, Values: []string{p.value}})
			} else {
				answers = append(answers, form.Answer{QuestionID: p.questionID, Value: p.value})
			}
			continue
		}
		if qt == form.TypeCheckbox {
			answers[i].Values = append(answers[i].Values, p.value)
		} else {
			answers[i].Value = p.value
		}
	}
	return answers, nil
}
