package cli

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testSchema() *CommandDef {
	return NewCommand("root", "Root command").
		AddArg("n", "name", Value, "Sets a name").
		AddArg("f", "flag", Flag, "Sets a flag").
		AddArg("s", "sub", Flag, "Same name as a sub-command").
		AddCommand(NewCommand("sub", "A sub-command").
			AddArg("v", "verbose", Flag, "Be verbose").
			AddCommand(NewCommand("deep", "A nested sub-command"))).
		AddCommand(NewCommand("child", "Another sub-command").
			AddArg("o", "output", Value, "Output file"))
}

func TestCommandDef_Parse(t *testing.T) {
	tests := map[string]struct {
		args       []string
		path       []string
		argsParsed map[string]Arg
		positional []string
	}{
		"Root only": {
			args: []string{"root"},
			path: []string{"root"},
		},
		"Empty args": {
			args: nil,
			path: []string{"root"},
		},
		"Root name isn't matched": {
			args: []string{"whatever"},
			path: []string{"root"},
		},
		"Long value": {
			args:       []string{"root", "--name", "X", "tail"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "X"}},
			positional: []string{"tail"},
		},
		"Short value normalizes to long name": {
			args:       []string{"root", "-n", "X"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "X"}},
		},
		"Inline value": {
			args:       []string{"root", "--name=X=Y"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "X=Y"}},
		},
		"Inline value by short name": {
			args:       []string{"root", "--n=X"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "X"}},
		},
		"Last value wins": {
			args:       []string{"root", "--name", "X", "-n", "Y"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "Y"}},
		},
		"Flag": {
			args:       []string{"root", "-f", "a", "b"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"flag": {Kind: Flag}},
			positional: []string{"a", "b"},
		},
		"End of options": {
			args:       []string{"root", "--", "--not-a-flag", "x"},
			path:       []string{"root"},
			positional: []string{"--not-a-flag", "x"},
		},
		"End of options keeps help literal": {
			args:       []string{"root", "--", "help", "-h"},
			path:       []string{"root"},
			positional: []string{"help", "-h"},
		},
		"End of options prevents sub-command": {
			args:       []string{"root", "--", "sub"},
			path:       []string{"root"},
			positional: []string{"sub"},
		},
		"Sub-command": {
			args: []string{"root", "sub"},
			path: []string{"root", "sub"},
		},
		"Sub-command has priority over same-named argument": {
			args:       []string{"root", "sub", "x"},
			path:       []string{"root", "sub"},
			positional: []string{"x"},
		},
		"Nested sub-command": {
			args:       []string{"root", "sub", "deep", "a"},
			path:       []string{"root", "sub", "deep"},
			positional: []string{"a"},
		},
		"Sub-command arguments": {
			args:       []string{"root", "child", "-o", "out.txt", "a", "b"},
			path:       []string{"root", "child"},
			argsParsed: map[string]Arg{"output": {Kind: Value, Value: "out.txt"}},
			positional: []string{"a", "b"},
		},
		"Flag latches sub-command off": {
			args:       []string{"root", "--flag", "sub"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"flag": {Kind: Flag}},
			positional: []string{"sub"},
		},
		"Unmatched word latches sub-command off": {
			args:       []string{"root", "other", "sub"},
			path:       []string{"root"},
			positional: []string{"other", "sub"},
		},
		"Value can look like a sub-command": {
			args:       []string{"root", "--name", "sub"},
			path:       []string{"root"},
			argsParsed: map[string]Arg{"name": {Kind: Value, Value: "sub"}},
		},
		"Sub-command ends at parent": {
			args:       []string{"root", "sub", "-v", "deep"},
			path:       []string{"root", "sub"},
			argsParsed: map[string]Arg{"verbose": {Kind: Flag}},
			positional: []string{"deep"},
		},
		"End of options in sub-command": {
			args:       []string{"root", "child", "--", "-o"},
			path:       []string{"root", "child"},
			positional: []string{"-o"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := testSchema().Parse(tc.args)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.path, cmd.Path())
			if tc.argsParsed == nil {
				tc.argsParsed = map[string]Arg{}
			}
			assert.Equal(t, tc.argsParsed, cmd.args)
			assert.Equal(t, tc.positional, cmd.Positional())
		})
	}
}

func TestCommandDef_Parse_Errors(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected *ParseError
		sentinel error
	}{
		"Help word": {
			args:     []string{"root", "help"},
			expected: &ParseError{Kind: HelpRequested, Path: []string{"root"}},
			sentinel: ErrHelpRequested,
		},
		"Short help": {
			args:     []string{"root", "-h"},
			expected: &ParseError{Kind: HelpRequested, Path: []string{"root"}},
			sentinel: ErrHelpRequested,
		},
		"Long help": {
			args:     []string{"root", "--help"},
			expected: &ParseError{Kind: HelpRequested, Path: []string{"root"}},
			sentinel: ErrHelpRequested,
		},
		"Help after arguments": {
			args:     []string{"root", "-f", "a", "help"},
			expected: &ParseError{Kind: HelpRequested, Path: []string{"root"}},
			sentinel: ErrHelpRequested,
		},
		"Help in sub-command": {
			args:     []string{"root", "sub", "deep", "--help"},
			expected: &ParseError{Kind: HelpRequested, Path: []string{"root", "sub", "deep"}},
			sentinel: ErrHelpRequested,
		},
		"Unknown long argument": {
			args:     []string{"root", "--bogus"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root"}, Name: "bogus"},
			sentinel: ErrUnknownArg,
		},
		"Unknown argument in sub-command": {
			args:     []string{"root", "child", "--bogus"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root", "child"}, Name: "bogus"},
			sentinel: ErrUnknownArg,
		},
		"Parent argument isn't inherited": {
			args:     []string{"root", "child", "-f"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root", "child"}, Name: "f"},
			sentinel: ErrUnknownArg,
		},
		"Unknown inline argument": {
			args:     []string{"root", "--bogus=1"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root"}, Name: "bogus"},
			sentinel: ErrUnknownArg,
		},
		"Clusters aren't split": {
			args:     []string{"root", "-fs"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root"}, Name: "fs"},
			sentinel: ErrUnknownArg,
		},
		"Missing value at end": {
			args:     []string{"root", "--name"},
			expected: &ParseError{Kind: MissingArgValue, Path: []string{"root"}, Name: "name"},
			sentinel: ErrMissingArgValue,
		},
		"Missing value before option": {
			args:     []string{"root", "-n", "--flag"},
			expected: &ParseError{Kind: MissingArgValue, Path: []string{"root"}, Name: "n"},
			sentinel: ErrMissingArgValue,
		},
		"Missing value before end of options": {
			args:     []string{"root", "--name", "--", "x"},
			expected: &ParseError{Kind: MissingArgValue, Path: []string{"root"}, Name: "name"},
			sentinel: ErrMissingArgValue,
		},
		"Flag with value": {
			args:     []string{"root", "--flag=1"},
			expected: &ParseError{Kind: UnexpectedArgValue, Path: []string{"root"}, Name: "flag"},
			sentinel: ErrUnexpectedArgValue,
		},
		"First error wins": {
			args:     []string{"root", "--bogus", "--help"},
			expected: &ParseError{Kind: UnknownArg, Path: []string{"root"}, Name: "bogus"},
			sentinel: ErrUnknownArg,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := testSchema().Parse(tc.args)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, tc.sentinel)
			var perr *ParseError
			if assert.True(t, errors.As(err, &perr)) {
				assert.Equal(t, tc.expected, perr)
			}
		})
	}
}

func TestCommandDef_Parse_HelpPrecedence(t *testing.T) {
	root := NewCommand("root", "").
		AddArg("h", "help", Flag, "A conflicting help flag").
		AddCommand(NewCommand("help", "A conflicting help command"))

	for _, args := range [][]string{
		{"root", "help"},
		{"root", "-h"},
		{"root", "--help"},
	} {
		_, err := root.Parse(args)
		assert.Equal(t, &ParseError{Kind: HelpRequested, Path: []string{"root"}}, err)
		assert.True(t, IsHelp(err))
	}
}

func TestCommandDef_ParseTokens_PathIsolation(t *testing.T) {
	root := testSchema()
	first, err := root.Parse([]string{"root", "sub", "deep"})
	assert.NoError(t, err)
	second, err := root.Parse([]string{"root", "child"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"root", "sub", "deep"}, first.Path())
	assert.Equal(t, []string{"root", "child"}, second.Path())
}

func TestCommand_Accessors(t *testing.T) {
	cmd, err := testSchema().Parse([]string{"root", "-f", "--name", "X", "some", "path"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "", cmd.Route())
	assert.True(t, cmd.Flag("flag"))
	assert.False(t, cmd.Flag("f"), "Lookup is by long name only")
	assert.False(t, cmd.Flag("sub"))

	val, ok := cmd.Value("name")
	assert.True(t, ok)
	assert.Equal(t, "X", val)
	_, ok = cmd.Value("flag")
	assert.False(t, ok, "A flag has no value")

	arg, ok := cmd.Arg("flag")
	assert.True(t, ok)
	assert.Equal(t, Arg{Kind: Flag}, arg)
	_, ok = cmd.Arg("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"some", "path"}, cmd.Positional())
	assert.Equal(t, "some path", cmd.PositionalString())
	assert.NoError(t, cmd.RequirePositional("path"))

	nested, err := testSchema().Parse([]string{"root", "sub", "deep"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "sub deep", nested.Route())
	assert.Equal(t, "", nested.PositionalString())
	err = nested.RequirePositional("path")
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Equal(t, "missing value for command 'path' at 'root sub deep'", err.Error())
}
