package main

import (
	"context"
	"fmt"
	"io"

	"github.com/saylorsolutions/wsm/cli"
	"github.com/saylorsolutions/wsm/picker"
	"github.com/saylorsolutions/wsm/tmux"
	"github.com/saylorsolutions/wsm/workspace"
)

func schema() *cli.CommandDef {
	return cli.NewCommand("wsm", "Command line workspace multiplexer, add workspaces to a list and switch between them using fzf and tmux").
		AddArg("i", "interactive", cli.Flag, "Run commands interactively").
		AddCommand(cli.NewCommand("select", "Select a workspace in fzf and switch to its tmux session (create + switch)").
			AddArg("p", "print", cli.Flag, "Creates the tmux session and prints its name instead of switching")).
		AddCommand(cli.NewCommand("add", "Add a workspace, the current directory if no path is given").
			AddArg("n", "name", cli.Value, "Set a custom name for the workspace")).
		AddCommand(cli.NewCommand("remove", "Remove a workspace, the current directory if no path is given")).
		AddCommand(cli.NewCommand("ls", "List all added workspaces"))
}

// wsm holds the collaborators used by command handlers.
type wsm struct {
	app    *cli.App
	file   string
	store  *workspace.Store
	picker *picker.Picker
	tmux   *tmux.Client
	in     io.Reader
	out    io.Writer
}

func newApp(w *wsm) *cli.App {
	w.app = cli.NewApp(schema()).
		PreExec(w.loadStore).
		Handle("", w.root).
		Handle("select", w.selectWorkspace).
		Handle("add", w.add).
		Handle("remove", w.remove).
		Handle("ls", w.list)
	return w.app
}

func (w *wsm) loadStore(_ context.Context, _ *cli.Command) error {
	store, err := workspace.Load(w.file)
	if err != nil {
		return err
	}
	w.store = store
	return nil
}

func (w *wsm) root(ctx context.Context, cmd *cli.Command, out *cli.Printer) error {
	if len(cmd.Positional()) > 0 {
		return cli.NewUsageError("%w", &cli.ParseError{Kind: cli.UnknownCommand, Path: cmd.Path(), Name: cmd.Positional()[0]})
	}
	if cmd.Flag("interactive") {
		return w.app.Interactive(ctx, w.in)
	}
	out.Print(w.app.Root().Usage(cmd.Path()))
	return nil
}

func (w *wsm) add(_ context.Context, cmd *cli.Command, _ *cli.Printer) error {
	dir, err := workspace.ResolveDir(cmd.PositionalString())
	if err != nil {
		return err
	}
	name, _ := cmd.Value("name")
	if err := w.store.Add(dir, name); err != nil {
		return err
	}
	if err := w.store.Save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w.out, "Added workspace: %s\n", dir)
	return nil
}

func (w *wsm) remove(_ context.Context, cmd *cli.Command, _ *cli.Printer) error {
	dir, err := workspace.ResolveDir(cmd.PositionalString())
	if err != nil {
		return err
	}
	if err := w.store.Remove(dir); err != nil {
		return err
	}
	if err := w.store.Save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w.out, "Removed workspace: %s\n", dir)
	return nil
}

func (w *wsm) list(_ context.Context, _ *cli.Command, _ *cli.Printer) error {
	for _, ws := range w.store.All() {
		_, _ = fmt.Fprintln(w.out, ws.Path)
	}
	return nil
}

// selectWorkspace opens the session for a picked workspace.
// With --print the session is only created, and its name is printed for scripts to use.
func (w *wsm) selectWorkspace(ctx context.Context, cmd *cli.Command, _ *cli.Printer) error {
	ws, err := w.picker.Pick(ctx, w.store.All())
	if err != nil {
		return err
	}
	if ws == nil {
		return nil
	}
	printOnly := cmd.Flag("print")
	name := tmux.SessionName(ws.Path)
	if err := w.tmux.Open(ctx, name, ws.Path, printOnly); err != nil {
		return err
	}
	if printOnly {
		_, _ = fmt.Fprintln(w.out, name)
	}
	return nil
}
