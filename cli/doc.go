/*
Package cli provides a small, schema driven parser for CLIs with nested sub-commands.

A schema is a tree of [CommandDef], each with [ArgDef] arguments and sub-commands.
Arguments are either a [Flag] (presence only) or a [Value] (exactly one value).
There are a few policies for how parsing works.

  - Arguments are tokenized without any schema knowledge. "--" ends option parsing, "--name=value" is split on the first '=', and "-name" is one name, never a cluster of single character flags.
  - A sub-command is only recognized as the very next word after its parent. Any flag or other word before it turns it into a positional word.
  - The word "help", or "-h"/"--help", stops parsing with a [HelpRequested] error, even if a sub-command or argument would otherwise match.
  - The first error ends the parse. Every [ParseError] carries the path of commands reached so far, so help can be shown in context.

# Invocation

Invoking a CLI built with this package always follows this form:

	CLI_NAME [SUB-COMMAND...] [FLAGS...] [ARGS...] [-- ARGS...]

# Dispatch

An [App] ties routes, which are command paths below the root joined with spaces, to a [HandlerFunc].
User-visible output goes to STDERR by default through a configurable [Printer].
Use [App.Interactive] to run many commands in one session.
*/
package cli
