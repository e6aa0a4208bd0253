package cli

import (
	"slices"
	"strings"
)

const helpWord = "help"

// Arg is a parsed argument. Value is only meaningful when Kind is [Value].
type Arg struct {
	Kind  ArgKind
	Value string
}

// Command is the result of a successful parse.
type Command struct {
	path       []string
	args       map[string]Arg
	positional []string
}

// Path returns the command names from the root to the deepest matched sub-command.
func (c *Command) Path() []string {
	return c.path
}

// Route returns the path without the root name, joined with spaces.
// The root command itself has an empty route.
func (c *Command) Route() string {
	if len(c.path) < 2 {
		return ""
	}
	return strings.Join(c.path[1:], " ")
}

// Arg looks up a parsed argument by its long name.
func (c *Command) Arg(long string) (Arg, bool) {
	arg, ok := c.args[long]
	return arg, ok
}

// Flag reports whether the argument with the given long name was passed.
func (c *Command) Flag(long string) bool {
	_, ok := c.args[long]
	return ok
}

// Value returns the value of a [Value] argument, if it was passed.
func (c *Command) Value(long string) (string, bool) {
	arg, ok := c.args[long]
	if !ok || arg.Kind != Value {
		return "", false
	}
	return arg.Value, true
}

// Positional returns the positional words in the order they were given.
func (c *Command) Positional() []string {
	return c.positional
}

// PositionalString joins positional words with a space.
// Note that this can't distinguish one word containing a space from two separate words.
func (c *Command) PositionalString() string {
	return strings.Join(c.positional, " ")
}

// RequirePositional returns a [MissingValue] error naming the missing value if no positional words were given.
func (c *Command) RequirePositional(name string) error {
	if len(c.positional) == 0 {
		return newParseError(MissingValue, c.path, name)
	}
	return nil
}

// Parse tokenizes and parses args against this schema.
// The first element of args is taken as the name used to invoke the root command, and is not matched.
//
// The returned error is always a *[ParseError].
func (c *CommandDef) Parse(args []string) (*Command, error) {
	return c.ParseTokens(Tokenize(args))
}

// ParseTokens parses an already tokenized argument list, see [CommandDef.Parse].
func (c *CommandDef) ParseTokens(tokens []Token) (*Command, error) {
	p := &parser{tokens: tokens}
	cmd, perr := p.parse(c, nil)
	if perr != nil {
		return nil, perr
	}
	return cmd, nil
}

type parser struct {
	tokens     []Token
	pos        int
	positional bool
}

// parse handles the node whose name token is at p.pos.
// Sub-commands continue from the shared cursor, and their result is the result of the whole parse.
func (p *parser) parse(def *CommandDef, parent []string) (*Command, *ParseError) {
	path := append(slices.Clone(parent), def.name)
	cmd := &Command{path: path, args: map[string]Arg{}}
	canBeSubcommand := len(def.commands) > 0

	for p.pos++; p.pos < len(p.tokens); p.pos++ {
		tok := p.tokens[p.pos]

		if p.positional {
			if tok.Kind == Word {
				cmd.positional = append(cmd.positional, tok.Value)
			}
			continue
		}
		if tok.Kind == EndOfOptions {
			p.positional = true
			continue
		}
		if tok.Kind == Word && tok.Value == helpWord {
			return nil, newParseError(HelpRequested, path, "")
		}
		if canBeSubcommand && tok.Kind == Word {
			if sub, ok := def.FindCommand(tok.Value); ok {
				return p.parse(sub, path)
			}
		}
		canBeSubcommand = false

		switch tok.Kind {
		case ShortName, LongName:
			if tok.Name == helpWord || tok.Name == "h" {
				return nil, newParseError(HelpRequested, path, "")
			}
			argDef, ok := def.FindArg(tok.Name)
			if !ok {
				return nil, newParseError(UnknownArg, path, tok.Name)
			}
			arg := Arg{Kind: argDef.Kind}
			if argDef.Kind == Value {
				next := p.pos + 1
				if next >= len(p.tokens) || p.tokens[next].Kind != Word {
					return nil, newParseError(MissingArgValue, path, tok.Name)
				}
				arg.Value = p.tokens[next].Value
				p.pos = next
			}
			cmd.args[argDef.Long] = arg
		case LongNameWithValue:
			argDef, ok := def.FindArg(tok.Name)
			if !ok {
				return nil, newParseError(UnknownArg, path, tok.Name)
			}
			if argDef.Kind == Flag {
				return nil, newParseError(UnexpectedArgValue, path, tok.Name)
			}
			cmd.args[argDef.Long] = Arg{Kind: Value, Value: tok.Value}
		case Word:
			cmd.positional = append(cmd.positional, tok.Value)
		}
	}
	return cmd, nil
}
