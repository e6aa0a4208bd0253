package cli

import (
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

// Usage renders usage information for the node addressed by path in a FLAGS/COMMANDS layout.
// Flag lines are produced by [flag.FlagSet.FlagUsages], so a short name is only shown if it's a single character.
func (c *CommandDef) Usage(path []string) string {
	cmd, ok := c.Resolve(path)
	if !ok {
		return fmt.Sprintf("unknown command: %s\n", strings.Join(path, " "))
	}

	var buf strings.Builder
	buf.WriteString(cmd.description + "\n\n")
	buf.WriteString("USAGE:\n" + strings.Join(path, " "))
	if len(cmd.commands) > 0 {
		buf.WriteString(" [COMMAND]")
	}
	buf.WriteString(" [FLAGS...] [ARGS...]\n")
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(cmd.flagSet(strings.Join(path, " ")).FlagUsages())
	if len(cmd.commands) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(cmd.commandUsages())
	}
	return buf.String()
}

func (c *CommandDef) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, arg := range c.args {
		if len(arg.Long) == 0 || fs.Lookup(arg.Long) != nil {
			continue
		}
		short := arg.Short
		if len(short) != 1 || fs.ShorthandLookup(short) != nil {
			short = ""
		}
		switch arg.Kind {
		case Value:
			fs.StringP(arg.Long, short, "", arg.Description)
		default:
			fs.BoolP(arg.Long, short, false, arg.Description)
		}
	}
	if fs.Lookup(helpWord) == nil {
		short := "h"
		if fs.ShorthandLookup(short) != nil {
			short = ""
		}
		fs.BoolP(helpWord, short, false, "Prints this usage information")
	}
	return fs
}

// commandUsages lists sub-commands sorted by name, with descriptions aligned.
func (c *CommandDef) commandUsages() string {
	var (
		buf    strings.Builder
		subs   = slices.Clone(c.commands)
		maxLen int
	)
	slices.SortFunc(subs, func(a, b *CommandDef) int {
		return strings.Compare(a.name, b.name)
	})
	for _, sub := range subs {
		if l := len(sub.name); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for _, sub := range subs {
		buf.WriteString(fmt.Sprintf(fmtStr, sub.name, sub.description))
	}
	return buf.String()
}
