package cli

import (
	"fmt"
	"strings"
)

// TokenKind classifies a single raw argument.
type TokenKind int

const (
	ShortName         TokenKind = iota // -name
	LongName                           // --name
	LongNameWithValue                  // --name=value
	EndOfOptions                       // --
	Word                               // anything else
)

func (k TokenKind) String() string {
	switch k {
	case ShortName:
		return "short"
	case LongName:
		return "long"
	case LongNameWithValue:
		return "long-with-value"
	case EndOfOptions:
		return "end-of-options"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one classified raw argument.
// Name is set for option tokens, Value holds the inline value of a [LongNameWithValue] or the literal text of a [Word].
type Token struct {
	Kind  TokenKind
	Name  string
	Value string
}

func (t Token) String() string {
	switch t.Kind {
	case ShortName:
		return "-" + t.Name
	case LongName:
		return "--" + t.Name
	case LongNameWithValue:
		return "--" + t.Name + "=" + t.Value
	case EndOfOptions:
		return "--"
	default:
		return t.Value
	}
}

// Tokenize classifies each raw argument, producing exactly one [Token] per argument in the same order.
// Once "--" is seen, every later argument is a [Word] regardless of how it looks.
func Tokenize(args []string) []Token {
	tokens := make([]Token, len(args))
	positional := false
	for i, arg := range args {
		switch {
		case positional:
			tokens[i] = Token{Kind: Word, Value: arg}
		case arg == "--":
			tokens[i] = Token{Kind: EndOfOptions}
			positional = true
		case strings.HasPrefix(arg, "--"):
			rest := arg[2:]
			if key, val, found := strings.Cut(rest, "="); found {
				tokens[i] = Token{Kind: LongNameWithValue, Name: key, Value: val}
			} else {
				tokens[i] = Token{Kind: LongName, Name: rest}
			}
		case strings.HasPrefix(arg, "-"):
			tokens[i] = Token{Kind: ShortName, Name: arg[1:]}
		default:
			tokens[i] = Token{Kind: Word, Value: arg}
		}
	}
	return tokens
}
