package cli

import (
	"errors"
	"fmt"
)

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs maps positional words to targets in order.
// Each name in required must have a matching positional word, otherwise a [MissingValue] error naming the first missing one is returned.
// Targets beyond the given positional words are left unchanged, and must not be nil.
func MapArgs(cmd *Command, required []string, targets ...*string) error {
	if len(targets) < len(required) {
		return fmt.Errorf("%w: not enough targets (%d) for required arguments (%d)", ErrArgMap, len(targets), len(required))
	}
	positional := cmd.Positional()
	if len(positional) < len(required) {
		return newParseError(MissingValue, cmd.Path(), required[len(positional)])
	}
	for i := 0; i < len(positional) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = positional[i]
	}
	return nil
}
