// Package env loads wsm settings from environment variables.
package env

import (
	"log/slog"
	"os"
	"slices"
	"strings"
)

const (
	ConfigKey   = "WSM_CONFIG"    // ConfigKey overrides the location of the workspace file.
	LogLevelKey = "WSM_LOG_LEVEL" // LogLevelKey sets the log level, one of debug, info, warn, or error.
	DebugKey    = "WSM_DEBUG"     // DebugKey forces debug logging when true.
	LogFileKey  = "WSM_LOG_FILE"  // LogFileKey enables a rotating log file at the given location.
	FzfKey      = "WSM_FZF"       // FzfKey overrides the fzf binary.
	TmuxKey     = "WSM_TMUX"      // TmuxKey overrides the tmux binary.
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Settings are the environment-driven settings for wsm.
type Settings struct {
	ConfigFile string
	LogLevel   slog.Level
	LogFile    string
	Fzf        string
	Tmux       string
}

// Load reads [Settings] from the environment, applying defaults for anything unset.
// An empty ConfigFile means the default location should be used.
func Load() Settings {
	s := Settings{
		ConfigFile: Val(ConfigKey, ""),
		LogLevel:   Level(LogLevelKey, slog.LevelWarn),
		LogFile:    Val(LogFileKey, ""),
		Fzf:        Val(FzfKey, "fzf"),
		Tmux:       Val(TmuxKey, "tmux"),
	}
	if Bool(DebugKey, false) {
		s.LogLevel = slog.LevelDebug
	}
	return s
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	key = strings.ToLower(key)
	for _, kv := range os.Environ() {
		k, v, found := strings.Cut(kv, "=")
		if !found || strings.ToLower(k) != key {
			continue
		}
		if trimmed := strings.TrimSpace(v); len(trimmed) > 0 {
			return trimmed
		}
		return defaultVal
	}
	return defaultVal
}

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	switch {
	case slices.Contains(DefaultTrue, sval):
		return true
	case slices.Contains(DefaultFalse, sval):
		return false
	default:
		return defaultVal
	}
}

// Level interprets an environment variable as a [slog.Level], like "debug" or "WARN".
// The defaultVal will be returned if the variable isn't set or isn't a valid level.
func Level(key string, defaultVal slog.Level) slog.Level {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}
