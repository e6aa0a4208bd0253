// Package tmux creates, attaches, and switches between tmux sessions.
package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner runs the tmux binary.
// Output captures standard output, while Attach connects the process to the current terminal.
type Runner interface {
	Output(ctx context.Context, bin string, args ...string) ([]byte, error)
	Attach(ctx context.Context, bin string, args ...string) error
}

type Client struct {
	Bin    string
	Runner Runner
	Getenv func(key string) string
}

// New creates a [Client] for the given tmux binary.
func New(bin string) *Client {
	if len(bin) == 0 {
		bin = "tmux"
	}
	return &Client{Bin: bin, Runner: execRunner{}, Getenv: os.Getenv}
}

// SessionName derives a session name from a workspace directory.
// tmux doesn't allow '.' in session names, so they're replaced with '_'.
func SessionName(dir string) string {
	return strings.ReplaceAll(filepath.Base(dir), ".", "_")
}

// InTmux reports whether the current process is running inside a tmux client.
func (c *Client) InTmux() bool {
	return len(c.Getenv("TMUX")) > 0
}

func (c *Client) HasSession(ctx context.Context, name string) (bool, error) {
	_, err := c.Runner.Output(ctx, c.Bin, "has-session", "-t", "="+name)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check for session '%s': %w", name, err)
	}
	return true, nil
}

// CurrentSession returns the name of the session this process is running in.
func (c *Client) CurrentSession(ctx context.Context) (string, error) {
	out, err := c.Runner.Output(ctx, c.Bin, "display-message", "-p", "#S")
	if err != nil {
		return "", fmt.Errorf("failed to get current session: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// NewSession creates the session if it doesn't exist yet, starting in dir.
// If attach is true, then the current terminal is attached to it.
func (c *Client) NewSession(ctx context.Context, name, dir string, attach bool) error {
	args := []string{"new-session", "-A", "-s", name, "-c", dir}
	if attach {
		return c.Runner.Attach(ctx, c.Bin, args...)
	}
	if _, err := c.Runner.Output(ctx, c.Bin, append(args, "-d")...); err != nil {
		return fmt.Errorf("failed to create session '%s': %w", name, err)
	}
	return nil
}

func (c *Client) SwitchClient(ctx context.Context, name string) error {
	if _, err := c.Runner.Output(ctx, c.Bin, "switch-client", "-t", "="+name); err != nil {
		return fmt.Errorf("failed to switch to session '%s': %w", name, err)
	}
	return nil
}

// Open makes sure a session for dir exists, and moves the user to it.
// Inside tmux the client is switched, outside of it the terminal is attached.
// With detached set, the session is only created.
func (c *Client) Open(ctx context.Context, name, dir string, detached bool) error {
	inTmux := c.InTmux()
	if inTmux {
		current, err := c.CurrentSession(ctx)
		if err == nil && current == name {
			return nil
		}
	}

	create := !inTmux
	if inTmux {
		exists, err := c.HasSession(ctx, name)
		if err != nil {
			return err
		}
		create = !exists
	}
	if create {
		if err := c.NewSession(ctx, name, dir, !inTmux && !detached); err != nil {
			return err
		}
	}
	if inTmux && !detached {
		return c.SwitchClient(ctx, name)
	}
	return nil
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, bin string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, bin, args...).Output()
}

func (execRunner) Attach(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
