package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/podhmo/calc/internal/calc"
)

const promptTemplate = `============================================================
Enter your input in the format: <number> <operator> <number>
============================================================
    Or you may input '%s' to stop using the calculator
============================================================`

// PromptFor returns the banner printed before every input line.
func PromptFor(exitKeyword string) string {
	return fmt.Sprintf(promptTemplate, exitKeyword)
}

// Config holds the configuration for a calculator session,
// typically derived from its command-line arguments.
type Config struct {
	Mode        calc.Mode     // Numeric mode ("float" or "int")
	Prompt      string        // Banner printed before each read
	ExitKeyword string        // Single token that ends the session (e.g., "exit")
	HelpKeyword string        // Single token that prints the operator table (e.g., "help")
	Delay       time.Duration // Cosmetic pause after each output line; 0 disables it
	Quiet       bool          // Suppress the prompt banner
	Debug       bool          // Enable debug logging
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		Mode:        calc.ModeFloat,
		Prompt:      PromptFor("exit"),
		ExitKeyword: "exit",
		HelpKeyword: "help",
	}
}

// Validate checks that the configuration can drive a session.
func (c *Config) Validate() error {
	var errs []error
	if _, err := calc.New(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.ExitKeyword) == "" || len(strings.Fields(c.ExitKeyword)) != 1 {
		errs = append(errs, fmt.Errorf("exit keyword must be a single token, got %q", c.ExitKeyword))
	}
	if c.HelpKeyword != "" && c.HelpKeyword == c.ExitKeyword {
		errs = append(errs, fmt.Errorf("help keyword %q collides with the exit keyword", c.HelpKeyword))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", c.Delay))
	}
	return errors.Join(errs...)
}
