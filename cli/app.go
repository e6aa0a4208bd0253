package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// HandlerFunc runs a matched [Command].
type HandlerFunc func(ctx context.Context, cmd *Command, printer *Printer) error

// PreExec is a function that runs before any [HandlerFunc].
type PreExec func(ctx context.Context, cmd *Command) error

// App connects a [CommandDef] schema to handlers, keyed by [Command.Route].
type App struct {
	root        *CommandDef
	routes      map[string]HandlerFunc
	preExec     []PreExec
	printer     *Printer
	logger      *slog.Logger
	interactive bool
}

// NewApp creates an [App] for the given schema root.
// Output goes to a default [Printer], and logging is discarded until [App.WithLogger] is called.
func NewApp(root *CommandDef) *App {
	if root == nil {
		panic("nil root command")
	}
	return &App{
		root:    root,
		routes:  map[string]HandlerFunc{},
		printer: NewPrinter(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (a *App) Root() *CommandDef {
	return a.root
}

func (a *App) Printer() *Printer {
	return a.printer
}

func (a *App) WithLogger(logger *slog.Logger) *App {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Handle registers fn for the route, which is the command path below the root joined with spaces.
// An empty route handles the root command.
func (a *App) Handle(route string, fn HandlerFunc) *App {
	if fn == nil {
		panic("nil handler for route '" + route + "'")
	}
	a.routes[strings.Join(strings.Fields(route), " ")] = fn
	return a
}

// PreExec registers a function that runs right before a handler, in registration order.
// If one returns an error, then the handler isn't run, and the error is returned from [App.Run].
func (a *App) PreExec(fn PreExec) *App {
	if fn == nil {
		panic("nil pre-exec function")
	}
	a.preExec = append(a.preExec, fn)
	return a
}

// Run parses args and dispatches to the matching handler.
// The first element of args is the name the root command was invoked with.
//
// Help requests print help and return nil.
// Other parse errors are printed along with help for the failing command, and returned.
func (a *App) Run(ctx context.Context, args []string) error {
	tokens := Tokenize(args)
	a.logger.Debug("Tokenized arguments", "tokens", tokens)

	cmd, err := a.root.ParseTokens(tokens)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) && perr.Kind == HelpRequested {
			a.printer.Print(a.root.Help(perr.Path))
			return nil
		}
		a.report(err)
		return err
	}
	a.logger.Debug("Parsed command", "path", cmd.Path(), "positional", cmd.Positional())

	handler, ok := a.routes[cmd.Route()]
	if !ok {
		if len(cmd.Path()) == 1 && len(cmd.Positional()) == 0 && len(cmd.args) == 0 {
			a.printer.Print(a.root.Help(cmd.Path()))
			return nil
		}
		name := cmd.Path()[len(cmd.Path())-1]
		if len(cmd.Positional()) > 0 {
			name = cmd.Positional()[0]
		}
		err := newParseError(UnknownCommand, cmd.Path(), name)
		a.report(err)
		return err
	}

	for _, fn := range a.preExec {
		if err := fn(ctx, cmd); err != nil {
			return err
		}
	}
	if err := handler(ctx, cmd, a.printer); err != nil {
		if errors.Is(err, &UsageError{}) {
			a.printer.PrintError(err, a.root.Help(cmd.Path()))
			return err
		}
		return fmt.Errorf("%s: %w", strings.Join(cmd.Path(), " "), err)
	}
	return nil
}

func (a *App) report(err error) {
	path := a.root.name
	var perr *ParseError
	if errors.As(err, &perr) {
		a.printer.PrintError(err, a.root.Help(perr.Path))
		path = strings.Join(perr.Path, " ")
	}
	a.logger.Debug("Failed to parse arguments", "path", path, "error", err)
}
