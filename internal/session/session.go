// Package session runs the read-evaluate-print loop of the calculator.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/podhmo/calc/internal/calc"
	"github.com/podhmo/calc/internal/config"
	"github.com/podhmo/calc/internal/help"
	"github.com/podhmo/calc/internal/metadata"
)

var (
	// ErrMalformedInput is reported for lines that are not
	// "<operand> <operator> <operand>" or a unary operator with one operand.
	ErrMalformedInput = errors.New("invalid input format")
	// ErrInputRead ends the session when no further line can be read.
	ErrInputRead = errors.New("failed to read input")
)

const (
	usageLine   = "Invalid input format. Use: <number> <operator> [<number>]"
	farewell    = "Bye bye"
	description = "Interactive two-operand calculator."
)

// Options holds the collaborators of a Session. Zero fields fall back to
// config.Default(), the float engine, os.Stdin/os.Stdout/os.Stderr and
// slog.Default().
type Options struct {
	Config *config.Config
	Engine calc.Engine
	Input  LineReader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Session is a single interactive run. It keeps no state between lines.
type Session struct {
	cfg    *config.Config
	engine calc.Engine
	in     LineReader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// New builds a session from opts.
func New(opts Options) (*Session, error) {
	s := &Session{
		cfg:    opts.Config,
		engine: opts.Engine,
		in:     opts.Input,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logger: opts.Logger,
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if s.engine == nil {
		engine, err := calc.New(s.cfg.Mode)
		if err != nil {
			return nil, err
		}
		s.engine = engine
	}
	if s.in == nil {
		s.in = NewBufferedReader(os.Stdin)
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// Run loops until the exit keyword is entered, in which case it returns
// nil. A failed read, end of input included, returns an error wrapping
// ErrInputRead; cancellation of ctx returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.cfg.Quiet {
			fmt.Fprintln(s.stdout, s.cfg.Prompt)
		}

		line, err := s.in.ReadLine(ctx)
		if errors.Is(err, ErrInterrupted) {
			s.logger.DebugContext(ctx, "line interrupted")
			continue
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("%w: %w", ErrInputRead, err)
		}

		if s.handle(ctx, line) {
			fmt.Fprintln(s.stdout, farewell)
			return nil
		}
		s.pause(ctx)
	}
}

// handle processes one line and reports whether the session should end.
func (s *Session) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		switch fields[0] {
		case s.cfg.ExitKeyword:
			return true
		case s.cfg.HelpKeyword:
			fmt.Fprint(s.stdout, help.GenerateHelp(s.calculatorMetadata()))
			return false
		}
	}

	expr, err := s.tokenize(fields)
	if err != nil {
		s.logger.DebugContext(ctx, "malformed input", "line", line, "tokens", len(fields))
		fmt.Fprintln(s.stderr, usageLine)
		return false
	}

	s.logger.DebugContext(ctx, "dispatching", "operator", expr.Operator, "operands", expr.Operands, "mode", s.engine.Mode())
	result, err := s.engine.Evaluate(expr)
	if err != nil {
		s.report(ctx, err)
		return false
	}
	fmt.Fprintf(s.stdout, "Result: %s\n", result)
	return false
}

// tokenize maps fields to an expression using the arity of the registered
// operators, so new operators need no change here.
func (s *Session) tokenize(fields []string) (calc.Expression, error) {
	switch len(fields) {
	case 3:
		return calc.Expression{Operator: fields[1], Operands: []string{fields[0], fields[2]}}, nil
	case 2:
		if arity, ok := s.engine.Arity(fields[0]); ok && arity == metadata.Unary {
			return calc.Expression{Operator: fields[0], Operands: fields[1:]}, nil
		}
		if arity, ok := s.engine.Arity(fields[1]); ok && arity == metadata.Unary {
			return calc.Expression{Operator: fields[1], Operands: fields[:1]}, nil
		}
	}
	return calc.Expression{}, ErrMalformedInput
}

func (s *Session) report(ctx context.Context, err error) {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	for _, err := range errs {
		var operr *calc.OperandError
		if errors.As(err, &operr) {
			s.logger.DebugContext(ctx, "operand rejected", "position", operr.Position, "token", operr.Token, "error", operr.Err)
			fmt.Fprintf(s.stderr, "Error parsing %s value: %v\n", operr.Ordinal(), operr.Err)
			continue
		}
		s.logger.DebugContext(ctx, "calculation failed", "error", err)
		fmt.Fprintf(s.stderr, "Error in calculation: %v\n", err)
	}
}

func (s *Session) calculatorMetadata() *metadata.CalculatorMetadata {
	return &metadata.CalculatorMetadata{
		Name:        "calc",
		Mode:        string(s.engine.Mode()),
		Description: description,
		ExitKeyword: s.cfg.ExitKeyword,
		Operators:   s.engine.Operators(),
	}
}

// pause is the cosmetic delay after each output line.
func (s *Session) pause(ctx context.Context) {
	if s.cfg.Delay <= 0 {
		return
	}
	t := time.NewTimer(s.cfg.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
