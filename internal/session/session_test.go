package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhmo/calc/internal/calc"
	"github.com/podhmo/calc/internal/config"
)

// scriptedReader replays lines and then errors with err.
type scriptedReader struct {
	lines  []string
	errs   map[int]error
	err    error
	calls  int
	closed bool
}

func (r *scriptedReader) ReadLine(ctx context.Context) (string, error) {
	defer func() { r.calls++ }()
	if err, ok := r.errs[r.calls]; ok {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", r.err
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func newTestSession(t *testing.T, cfg *config.Config, in LineReader) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if cfg == nil {
		cfg = config.Default()
		cfg.Quiet = true
	}
	s, err := New(Options{
		Config: cfg,
		Input:  in,
		Stdout: &stdout,
		Stderr: &stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return s, &stdout, &stderr
}

func TestRun_ExitKeyword(t *testing.T) {
	in := &scriptedReader{lines: []string{"  exit  "}, err: io.EOF}
	s, stdout, stderr := newTestSession(t, nil, in)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "Bye bye\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_EOFIsFatal(t *testing.T) {
	in := &scriptedReader{lines: []string{"3 + 4"}, err: io.EOF}
	s, stdout, _ := newTestSession(t, nil, in)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputRead)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Result: 7\n", stdout.String())
}

func TestRun_ReadFailure(t *testing.T) {
	boom := errors.New("device unplugged")
	in := &scriptedReader{err: boom}
	s, _, _ := newTestSession(t, nil, in)

	err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrInputRead)
	assert.ErrorIs(t, err, boom)
}

func TestRun_InterruptDiscardsLine(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"1 + 1", "exit"},
		errs:  map[int]error{0: ErrInterrupted},
		err:   io.EOF,
	}
	s, stdout, stderr := newTestSession(t, nil, in)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "Result: 2\nBye bye\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, 3, in.calls)
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := &scriptedReader{lines: []string{"exit"}}
	s, stdout, _ := newTestSession(t, nil, in)

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
	assert.Zero(t, in.calls)
}

func TestRun_DelayIsCutShortByCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Quiet = true
	cfg.Delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	in := &cancelingReader{lines: []string{"1 + 1"}, cancel: cancel}
	s, stdout, _ := newTestSession(t, cfg, in)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, "Result: 2\n", stdout.String())
}

// cancelingReader cancels its context right after handing out its last line.
type cancelingReader struct {
	lines  []string
	cancel context.CancelFunc
}

func (r *cancelingReader) ReadLine(ctx context.Context) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if len(r.lines) == 0 {
		r.cancel()
	}
	return line, nil
}

func (r *cancelingReader) Close() error { return nil }

func TestTokenize(t *testing.T) {
	s, _, _ := newTestSession(t, nil, &scriptedReader{})

	tests := []struct {
		name    string
		line    string
		want    calc.Expression
		wantErr bool
	}{
		{"binary", "3 + 4", calc.Expression{Operator: "+", Operands: []string{"3", "4"}}, false},
		{"unary prefix", "sqrt 16", calc.Expression{Operator: "sqrt", Operands: []string{"16"}}, false},
		{"unary postfix", "16 sqrt", calc.Expression{Operator: "sqrt", Operands: []string{"16"}}, false},
		{"unary with unused operand", "16 sqrt 0", calc.Expression{Operator: "sqrt", Operands: []string{"16", "0"}}, false},
		{"unknown operator still dispatched", "1 % 2", calc.Expression{Operator: "%", Operands: []string{"1", "2"}}, false},
		{"binary operator with one operand", "5 +", calc.Expression{}, true},
		{"single token", "5", calc.Expression{}, true},
		{"empty", "", calc.Expression{}, true},
		{"four tokens", "1 + 2 3", calc.Expression{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.tokenize(strings.Fields(tt.line))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, calc.ModeFloat, s.engine.Mode())
	assert.NotNil(t, s.in)
	assert.NotNil(t, s.logger)

	cfg := config.Default()
	cfg.Mode = "roman"
	_, err = New(Options{Config: cfg})
	assert.ErrorContains(t, err, "invalid config")
}

func TestBufferedReader(t *testing.T) {
	r := NewBufferedReader(strings.NewReader("1 + 1\r\n2 * 3\nexit"))
	ctx := context.Background()

	for _, want := range []string{"1 + 1", "2 * 3", "exit"} {
		got, err := r.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, r.Close())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewBufferedReader(strings.NewReader("1 + 1\n")).ReadLine(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}
