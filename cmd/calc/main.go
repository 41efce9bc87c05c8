package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/podhmo/calc/internal/calc"
	"github.com/podhmo/calc/internal/config"
	"github.com/podhmo/calc/internal/help"
	"github.com/podhmo/calc/internal/metadata"
	"github.com/podhmo/calc/internal/session"
)

// Version is the current version of calc.
const Version = "0.1.0"

// Options holds the configuration for the calc command itself,
// typically derived from its command-line arguments.
type Options struct {
	Mode        string        // Numeric mode ("float" or "int")
	Delay       time.Duration // Pause after each output line
	Quiet       bool          // Suppress the prompt banner
	Debug       bool          // Enable debug logging
	ExitKeyword string        // Token that ends the session
}

func main() {
	// debug mode: if DEBUG environment variable is set, enable debug logging
	if _, ok := os.LookupEnv("DEBUG"); ok {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	defaults := config.Default()
	opts := &Options{
		Mode:        string(defaults.Mode),
		ExitKeyword: defaults.ExitKeyword,
	}

	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Interactive two-operand calculator",
		Long:          longHelp(),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.Context(), opts, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, fmt.Sprintf("Numeric mode (%s or %s)", calc.ModeFloat, calc.ModeInt))
	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "Pause after each result, e.g. 1s")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print the prompt banner")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.ExitKeyword, "exit-keyword", opts.ExitKeyword, "Input that ends the session")
	return cmd
}

func runCalc(ctx context.Context, opts *Options, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg := config.Default()
	cfg.Mode = calc.Mode(opts.Mode)
	cfg.Delay = opts.Delay
	cfg.Quiet = opts.Quiet
	cfg.Debug = opts.Debug
	cfg.ExitKeyword = opts.ExitKeyword
	cfg.Prompt = config.PromptFor(opts.ExitKeyword)
	if err := cfg.Validate(); err != nil {
		return err
	}

	engine, err := calc.New(cfg.Mode)
	if err != nil {
		return err
	}

	in, err := newLineReader(stdin, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	slog.DebugContext(ctx, "calc: starting session", "mode", cfg.Mode, "delay", cfg.Delay, "exitKeyword", cfg.ExitKeyword)

	s, err := session.New(session.Options{
		Config: cfg,
		Engine: engine,
		Input:  in,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// newLineReader uses readline when stdin is a terminal and plain buffered
// reads otherwise.
func newLineReader(stdin io.Reader, stdout, stderr io.Writer) (session.LineReader, error) {
	if f, ok := stdin.(*os.File); ok && session.IsTerminal(int(f.Fd())) {
		return session.NewReadlineReader(session.ReadlineConfig{
			Prompt: "> ",
			Stdin:  f,
			Stdout: stdout,
			Stderr: stderr,
		})
	}
	return session.NewBufferedReader(io.NopCloser(stdin)), nil
}

func longHelp() string {
	engine, err := calc.New(calc.ModeFloat)
	if err != nil {
		return ""
	}
	return help.GenerateHelp(&metadata.CalculatorMetadata{
		Name:        "calc",
		Mode:        string(engine.Mode()),
		Description: "Reads one expression per line and prints its result.",
		ExitKeyword: config.Default().ExitKeyword,
		Operators:   engine.Operators(),
	})
}
