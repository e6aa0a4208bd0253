// Command wsm keeps a list of workspace directories, and switches between their tmux sessions with fzf.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/saylorsolutions/wsm/cli"
	"github.com/saylorsolutions/wsm/env"
	"github.com/saylorsolutions/wsm/picker"
	"github.com/saylorsolutions/wsm/signalx"
	"github.com/saylorsolutions/wsm/slogx"
	"github.com/saylorsolutions/wsm/tmux"
	"github.com/saylorsolutions/wsm/workspace"
)

func main() {
	ctx, stop := signalx.SignalExitCtx(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, env.Load(), os.Args, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run wires settings into the app and runs it, so main only deals with exit codes.
func run(ctx context.Context, settings env.Settings, args []string, in io.Reader, out io.Writer) error {
	logger, closeLog := newLogger(settings)
	defer closeLog()

	file := settings.ConfigFile
	if len(file) == 0 {
		var err error
		if file, err = workspace.DefaultFile(); err != nil {
			logger.Error("Failed to locate workspace file", "error", err)
			return err
		}
	}

	app := newApp(&wsm{
		file:   file,
		picker: picker.New(settings.Fzf),
		tmux:   tmux.New(settings.Tmux),
		in:     in,
		out:    out,
	}).WithLogger(logger)

	if err := app.Run(ctx, args); err != nil {
		var perr *cli.ParseError
		if !errors.As(err, &perr) {
			app.Printer().Println("Error:", err)
		}
		return err
	}
	return nil
}

func newLogger(settings env.Settings) (*slog.Logger, func()) {
	if len(settings.LogFile) == 0 {
		return slogx.New(os.Stderr, settings.LogLevel), func() {}
	}
	handler, closer := slogx.FileHandler(settings.LogFile, slog.LevelDebug)
	return slogx.New(os.Stderr, settings.LogLevel, handler), func() {
		_ = closer.Close()
	}
}
