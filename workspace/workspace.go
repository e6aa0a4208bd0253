// Package workspace persists the list of workspace directories that can be selected.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

var (
	ErrExists   = errors.New("workspace already exists")
	ErrNotFound = errors.New("workspace does not exist")
	ErrNotDir   = errors.New("path is not a directory")
)

// Workspace is a directory that can be opened as a session.
type Workspace struct {
	Path string `json:"path"`
	Name string `json:"name,omitempty"`
}

// DisplayName returns the custom name if set, or the base name of the path.
func (w Workspace) DisplayName() string {
	if len(w.Name) > 0 {
		return w.Name
	}
	return filepath.Base(w.Path)
}

type document struct {
	Workspaces []Workspace `json:"workspaces"`
}

// Store is the workspace list backed by a JSON file.
// A Store is not concurrency safe.
type Store struct {
	file       string
	workspaces []Workspace
}

// DefaultFile returns the default location of the workspace file, ~/.config/wsm/config.json.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("can't get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "wsm", "config.json"), nil
}

// Load reads the workspace file. A missing file results in an empty [Store].
func Load(file string) (*Store, error) {
	s := &Store{file: file}
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode workspace file '%s': %w", file, err)
	}
	s.workspaces = doc.Workspaces
	return s, nil
}

// File returns the location this [Store] is persisted to.
func (s *Store) File() string {
	return s.file
}

// Save writes the workspace file, creating parent directories as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	workspaces := s.workspaces
	if workspaces == nil {
		workspaces = []Workspace{}
	}
	data, err := json.MarshalIndent(document{Workspaces: workspaces}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.file, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workspace file: %w", err)
	}
	return nil
}

func (s *Store) Has(path string) bool {
	return slices.ContainsFunc(s.workspaces, func(ws Workspace) bool {
		return ws.Path == path
	})
}

// All returns every workspace in the order they were added.
func (s *Store) All() []Workspace {
	return s.workspaces
}

// Add appends a workspace, returning [ErrExists] if the path is already present.
func (s *Store) Add(path, name string) error {
	if s.Has(path) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	s.workspaces = append(s.workspaces, Workspace{Path: path, Name: name})
	return nil
}

// Remove deletes the workspace with the given path, returning [ErrNotFound] if it isn't present.
func (s *Store) Remove(path string) error {
	before := len(s.workspaces)
	s.workspaces = slices.DeleteFunc(s.workspaces, func(ws Workspace) bool {
		return ws.Path == path
	})
	if len(s.workspaces) == before {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

// ResolveDir turns a user supplied path into an absolute directory with symlinks evaluated.
// An empty path resolves to the current working directory.
func ResolveDir(path string) (string, error) {
	if len(path) == 0 {
		return os.Getwd()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDir, abs)
	}
	return abs, nil
}
