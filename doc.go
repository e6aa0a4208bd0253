/*
Package wsm is a command line workspace multiplexer.
It keeps a list of workspace directories, and switches between their tmux sessions, picking one with fzf.

The reusable part is the [github.com/saylorsolutions/wsm/cli] package, a schema driven parser for CLIs with nested sub-commands.
The wsm binary lives in cmd/wsm, and the collaborators it drives are in the workspace, picker, and tmux packages.
*/
package wsm
