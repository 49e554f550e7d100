// internal/commands/parser.go
package commands

import (
	"strings"

	"github.com/google/shlex"
)

// SplitSimple strips the command prefix and splits the rest on
// whitespace. A message that is only the prefix yields zero tokens.
func SplitSimple(content, prefix string) []string {
	return strings.Fields(strings.TrimPrefix(content, prefix))
}

// SplitQuoted strips the command prefix and tokenizes shell-style, so
// quoted product names and descriptions survive as single arguments.
func SplitQuoted(content, prefix string) ([]string, error) {
	return shlex.Split(strings.TrimPrefix(content, prefix))
}
