// SPDX-License-Identifier: MPL-2.0

package runner

import "strings"

// Cmd is an ordered argument vector for one external process
// invocation. It is built incrementally and consumed exactly once by
// Run or RunChecked.
type Cmd struct {
	argv []string
}

// New builds a Cmd from the given arguments in order.
func New(args ...string) *Cmd {
	c := &Cmd{argv: make([]string, 0, len(args))}
	c.argv = append(c.argv, args...)
	return c
}

// Append adds single arguments in the order given.
func (c *Cmd) Append(args ...string) *Cmd {
	c.argv = append(c.argv, args...)
	return c
}

// AppendList flattens a sequence of arguments in place, preserving
// element order. Mixing Append and AppendList calls preserves overall
// call order.
func (c *Cmd) AppendList(args []string) *Cmd {
	c.argv = append(c.argv, args...)
	return c
}

// Len returns the current argument count.
func (c *Cmd) Len() int { return len(c.argv) }

// Argv returns a copy of the argument vector.
func (c *Cmd) Argv() []string {
	out := make([]string, len(c.argv))
	copy(out, c.argv)
	return out
}

// Render produces a single display string for diagnostics. An argument
// containing a space or a double-quote is wrapped in single quotes;
// single quotes inside an argument use POSIX '\'' escaping so every
// argument renders unambiguously. Arguments are space-joined in order.
//
// The output is for human eyes and command echoing; it is never handed
// to a shell for re-parsing.
func (c *Cmd) Render() string {
	quoted := make([]string, len(c.argv))
	for i, arg := range c.argv {
		quoted[i] = quoteArg(arg)
	}
	return strings.Join(quoted, " ")
}

// String implements fmt.Stringer via Render.
func (c *Cmd) String() string { return c.Render() }

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.ContainsRune(arg, '\'') {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	if strings.ContainsAny(arg, " \"") {
		return "'" + arg + "'"
	}
	return arg
}
