package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spiffcs/dtcalc/config"
	"github.com/spiffcs/dtcalc/internal/eval"
	"github.com/spiffcs/dtcalc/internal/log"
	"github.com/spiffcs/dtcalc/internal/repl"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "dtcalc [expression]",
		Short: "Date and time expression calculator",
		Long: `A calculator for date and time arithmetic. It evaluates expressions
combining dates, datetimes, and durations, like "today + 3d" or
"2024-07-10 - 2023-07-10".

With no expression on the command line or stdin, it starts an
interactive prompt with persistent history.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addRootFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

func addRootFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v, -vv)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Colorize output: auto, always, never")
}

func runRoot(cmd *cobra.Command, args []string, opts *Options) error {
	log.Initialize(opts.Verbosity, cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	color.NoColor = !cfg.ColorEnabled(term.IsTerminal(int(os.Stdout.Fd())))
	log.Debug("configuration loaded", "color", cfg.Color, "history", cfg.HistoryPath())

	expr, err := readExpression(cmd, args)
	if err != nil {
		return err
	}

	ev := eval.New()
	if expr != "" {
		out, err := ev.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	return repl.New(ev, cfg).Run()
}

// readExpression picks the one-shot expression to evaluate. Piped stdin
// wins over command-line arguments; an empty result means interactive
// mode.
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if expr := strings.TrimSpace(string(data)); expr != "" {
			return expr, nil
		}
	}
	return strings.TrimSpace(strings.Join(args, " ")), nil
}
