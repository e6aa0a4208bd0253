package cli

import (
	"errors"
	"fmt"
)

// ArgKind determines whether an argument consumes a value.
type ArgKind int

const (
	Flag  ArgKind = iota // Flag is a presence-only argument.
	Value                // Value consumes exactly one following word, or an inline --name=value.
)

func (k ArgKind) String() string {
	if k == Value {
		return "value"
	}
	return "flag"
}

// ArgDef describes an argument accepted by a [CommandDef].
// Long is the canonical name, and is used as the key for parsed results.
type ArgDef struct {
	Short       string
	Long        string
	Description string
	Kind        ArgKind
}

// CommandDef is a node in a command schema.
// It's built once with [NewCommand], [CommandDef.AddArg], and [CommandDef.AddCommand], and should not be changed after parsing begins.
//
// Names are expected to be unique among siblings, and argument names unique within a node.
// None of this is enforced while building, see [CommandDef.Validate] for an opt-in check.
type CommandDef struct {
	name        string
	description string
	args        []ArgDef
	commands    []*CommandDef
}

// NewCommand creates a [CommandDef] with no arguments or sub-commands.
func NewCommand(name, description string) *CommandDef {
	return &CommandDef{name: name, description: description}
}

// AddArg adds an argument definition to this [CommandDef].
func (c *CommandDef) AddArg(short, long string, kind ArgKind, description string) *CommandDef {
	c.args = append(c.args, ArgDef{
		Short:       short,
		Long:        long,
		Description: description,
		Kind:        kind,
	})
	return c
}

// AddCommand attaches a sub-command. The sub-command is owned by this [CommandDef] from now on.
func (c *CommandDef) AddCommand(sub *CommandDef) *CommandDef {
	if sub == nil {
		return c
	}
	c.commands = append(c.commands, sub)
	return c
}

func (c *CommandDef) Name() string {
	return c.name
}

func (c *CommandDef) Description() string {
	return c.description
}

// Args returns the argument definitions in definition order.
func (c *CommandDef) Args() []ArgDef {
	return c.args
}

// Commands returns the sub-commands in definition order.
func (c *CommandDef) Commands() []*CommandDef {
	return c.commands
}

// FindCommand returns the direct sub-command with exactly the given name.
func (c *CommandDef) FindCommand(name string) (*CommandDef, bool) {
	for _, sub := range c.commands {
		if sub.name == name {
			return sub, true
		}
	}
	return nil, false
}

// FindArg returns the first argument whose short or long name matches.
func (c *CommandDef) FindArg(name string) (ArgDef, bool) {
	for _, arg := range c.args {
		if arg.Long == name || arg.Short == name {
			return arg, true
		}
	}
	return ArgDef{}, false
}

// Resolve walks a path of names starting with this node's own name.
// Each step requires the head to match the current node, then descends with the remaining tail.
func (c *CommandDef) Resolve(path []string) (*CommandDef, bool) {
	if len(path) == 0 || path[0] != c.name {
		return nil, false
	}
	if len(path) == 1 {
		return c, true
	}
	sub, ok := c.FindCommand(path[1])
	if !ok {
		return nil, false
	}
	return sub.Resolve(path[1:])
}

var ErrInvalidSchema = errors.New("invalid command schema")

// Validate reports duplicate sub-command names and duplicate argument names anywhere in the tree.
// The parser never calls this, it's meant for tests of a CLI's schema.
func (c *CommandDef) Validate() error {
	return errors.Join(c.validate(c.name)...)
}

func (c *CommandDef) validate(at string) []error {
	var errs []error
	names := map[string]bool{}
	for _, arg := range c.args {
		for _, name := range []string{arg.Short, arg.Long} {
			if len(name) == 0 {
				continue
			}
			if names[name] {
				errs = append(errs, fmt.Errorf("%w: duplicate argument name '%s' at '%s'", ErrInvalidSchema, name, at))
			}
			names[name] = true
		}
	}
	commands := map[string]bool{}
	for _, sub := range c.commands {
		if commands[sub.name] {
			errs = append(errs, fmt.Errorf("%w: duplicate command '%s' at '%s'", ErrInvalidSchema, sub.name, at))
		}
		commands[sub.name] = true
		errs = append(errs, sub.validate(at+" "+sub.name)...)
	}
	return errs
}
