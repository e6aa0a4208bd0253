package cli

import (
	"fmt"
	"strings"
)

// Help renders the description, arguments, and sub-commands of the node addressed by path.
// The path must start with this node's name. If it can't be resolved, then an unknown command message is returned instead.
func (c *CommandDef) Help(path []string) string {
	cmd, ok := c.Resolve(path)
	if !ok {
		return fmt.Sprintf("unknown command: %s\n", strings.Join(path, " "))
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Command: %s\n%s\n", cmd.name, cmd.description))
	buf.WriteString("Arguments:\n")
	for _, arg := range cmd.args {
		names := "--" + arg.Long
		if len(arg.Short) > 0 {
			names = "-" + arg.Short + ", " + names
		}
		buf.WriteString(fmt.Sprintf("  %s: %s (%s)\n", names, arg.Description, arg.Kind))
	}
	buf.WriteString("\nSubcommands:\n")
	for _, sub := range cmd.commands {
		buf.WriteString(fmt.Sprintf("  %s: %s\n", sub.name, sub.description))
	}
	return buf.String()
}
