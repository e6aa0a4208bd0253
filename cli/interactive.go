package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.

	ErrAlreadyInteractive = errors.New("already running interactively")
)

// Interactive reads lines from in and runs each one through [App.Run] as if it followed the root command name.
// Errors from individual lines are printed and don't stop the loop.
// A prompt is only printed if in is a terminal.
//
// The loop ends at end of input, when ctx is done, or with one of the [InteractiveQuitCommands].
func (a *App) Interactive(ctx context.Context, in io.Reader) error {
	if a.interactive {
		return ErrAlreadyInteractive
	}
	a.interactive = true
	defer func() {
		a.interactive = false
	}()

	var commandStack [][]string
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	p := a.printer
	prompt := isTerminal(in)
	if prompt {
		p.Printf(`Running '%s' interactively. Enter %s to exit.
Use the %s command with one or more sub-commands to push them to the execution stack, and %s to pop and return.
`, a.root.name, strings.Join(InteractiveQuitCommands, " or "), UseCommand, BackCommand)
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt {
			p.Printf("%s> ", strings.Join(append([]string{a.root.name}, prefixCommands()...), " "))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		segments := strings.Fields(scanner.Text())
		if len(segments) == 0 {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(segments[0])) {
			return nil
		}
		switch segments[0] {
		case UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			if _, ok := a.root.Resolve(append([]string{a.root.name}, newStack...)); !ok {
				p.Printf("Unknown command '%s'\n", strings.Join(newStack, " "))
				continue
			}
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
			continue
		case BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
			continue
		}

		args := append([]string{a.root.name}, prefixCommands()...)
		if err := a.Run(ctx, append(args, segments...)); err != nil {
			if errors.Is(err, ErrAlreadyInteractive) {
				p.Println("Cannot run interactively twice")
				continue
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				p.Println("Error running command:", err)
			}
		}
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
