// Package picker selects a workspace interactively with fzf.
package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/saylorsolutions/wsm/workspace"
)

// previewScript shows the windows of a running session, or the directory listing otherwise.
// Fields 3 and up of an entry are the workspace path, see [Entries].
const previewScript = `sh -c '
    sess=$(basename {3..});
    if tmux has-session -t "$sess" 2>/dev/null; then
        tmux list-windows -t "$sess" -F "#I:#W" | while read -r line; do
            index=$(echo $line | cut -d: -f1);
            name=$(echo $line | cut -d: -f2);
            printf "\033[32m── Window $index: $name ──\033[0m\n";
            tmux capture-pane -pt "$sess:$index" -eS -5 -E 10 | sed "s/^/  /";
            echo "";
        done;
    else
        printf "\033[33m--- Session Not Active ---\033[0m\n";
        ls -p --color=always {3..};
    fi
'`

// Args are the arguments passed to fzf.
var Args = []string{
	"--layout=reverse",
	"--preview", previewScript,
	"--preview-window", "hidden",
	"--bind", "ctrl-t:toggle-preview",
}

// Runner runs the picker binary with the given input, returning its standard output.
type Runner func(ctx context.Context, bin string, args []string, stdin io.Reader) ([]byte, error)

type Picker struct {
	Bin string
	Run Runner
}

// New creates a [Picker] that runs the given fzf binary.
func New(bin string) *Picker {
	if len(bin) == 0 {
		bin = "fzf"
	}
	return &Picker{Bin: bin, Run: execRunner}
}

// Pick asks the user to choose one of the workspaces.
// A nil [workspace.Workspace] is returned without error if nothing was chosen.
func (p *Picker) Pick(ctx context.Context, workspaces []workspace.Workspace) (*workspace.Workspace, error) {
	if len(workspaces) == 0 {
		return nil, nil
	}
	out, err := p.Run(ctx, p.Bin, Args, strings.NewReader(Entries(workspaces)))
	if err != nil {
		var exitErr *exec.ExitError
		// fzf exits with 1 for no match, and 130 when interrupted.
		if errors.As(err, &exitErr) && (exitErr.ExitCode() == 1 || exitErr.ExitCode() == 130) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", p.Bin, err)
	}
	return Selection(out, workspaces), nil
}

// Entries renders one "<index> <name> <path>" line per workspace.
func Entries(workspaces []workspace.Workspace) string {
	var buf strings.Builder
	for i, ws := range workspaces {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(fmt.Sprintf("%d %s %s", i, ws.DisplayName(), ws.Path))
	}
	return buf.String()
}

// Selection maps picker output back to the chosen workspace using the leading index.
func Selection(output []byte, workspaces []workspace.Workspace) *workspace.Workspace {
	first, _, found := strings.Cut(strings.TrimSpace(string(output)), " ")
	if !found {
		return nil
	}
	i, err := strconv.Atoi(first)
	if err != nil || i < 0 || i >= len(workspaces) {
		return nil
	}
	return &workspaces[i]
}

func execRunner(ctx context.Context, bin string, args []string, stdin io.Reader) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = stdin
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
