// Package repl implements dtcalc's interactive prompt.
//
// It supports readline-style line editing and persists input history
// across sessions.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/spiffcs/dtcalc/config"
	"github.com/spiffcs/dtcalc/internal/eval"
	"github.com/spiffcs/dtcalc/internal/log"
)

const helpText = `Usage:
  dtcalc                      launch interactive mode
  dtcalc "today + 3d"         evaluate a single expression
  echo "today + 3d" | dtcalc  evaluate piped input

Expression format:
  <date|datetime> + <duration>
  <date|datetime> - <date|datetime|duration>
  <duration> +|- <duration>

Examples:
  today + 5d
  2024-01-01 - 2023-01-01
  now + 3h 15m
  06/10/24 15:33 + 10d5h
`

// REPL reads expressions from an interactive prompt and prints one
// result or error line per input.
type REPL struct {
	evaluator *eval.Evaluator
	cfg       *config.Config

	prompt     string
	resultMark string
	errorMark  string
}

// New creates a REPL around an evaluator and the loaded configuration.
func New(evaluator *eval.Evaluator, cfg *config.Config) *REPL {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	return &REPL{
		evaluator:  evaluator,
		cfg:        cfg,
		prompt:     color.New(color.FgHiBlue).Sprint(prompt),
		resultMark: color.New(color.FgHiBlue).Sprint("="),
		errorMark:  color.New(color.FgHiRed).Sprint("!"),
	}
}

// Run executes the read, eval, print loop until EOF or interrupt.
func (r *REPL) Run() error {
	limit := r.cfg.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	historyPath := r.cfg.HistoryPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.prompt,
		HistoryFile:       historyPath,
		HistoryLimit:      limit,
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	log.Debug("interactive session started", "history", historyPath, "limit", limit)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "help":
			fmt.Fprint(rl.Stdout(), helpText)
			continue
		case "exit", "quit":
			fmt.Fprintln(rl.Stdout(), "Bye!")
			return nil
		}

		fmt.Fprintln(rl.Stdout(), r.handle(line))
	}

	fmt.Fprintln(rl.Stdout(), "Bye!")
	return nil
}

// handle evaluates one input line and renders the result or error line.
func (r *REPL) handle(line string) string {
	out, err := r.evaluator.Evaluate(line)
	if err != nil {
		return fmt.Sprintf("%s %v", r.errorMark, err)
	}
	return fmt.Sprintf("%s %s", r.resultMark, out)
}
