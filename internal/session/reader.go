package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned by a LineReader when the user interrupts the
// current line (Ctrl-C). The session discards the line and prompts again.
var ErrInterrupted = errors.New("interrupted")

// LineReader yields one input line at a time, without the line terminator.
// At end of input it returns io.EOF.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
	Close() error
}

// BufferedReader reads lines from any io.Reader. It is used for piped
// input and in tests.
type BufferedReader struct {
	r *bufio.Reader
	c io.Closer
}

// NewBufferedReader returns a LineReader over r. If r is an io.Closer it
// is closed by Close.
func NewBufferedReader(r io.Reader) *BufferedReader {
	br := &BufferedReader{r: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		br.c = c
	}
	return br
}

// ReadLine returns the next line. A final line without a trailing newline
// is returned as is; the following call reports io.EOF.
func (br *BufferedReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := br.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (br *BufferedReader) Close() error {
	if br.c == nil {
		return nil
	}
	return br.c.Close()
}

// ReadlineReader provides line editing and in-memory history when the
// input is a terminal.
type ReadlineReader struct {
	rl *readline.Instance
}

// ReadlineConfig configures NewReadlineReader.
type ReadlineConfig struct {
	Prompt string
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// NewReadlineReader starts a readline instance.
func NewReadlineReader(cfg ReadlineConfig) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return readline.IsTerminal(fd)
}

func (r *ReadlineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
