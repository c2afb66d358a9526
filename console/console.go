// Package console implements the interactive text primitives: prompts,
// confirmations and the contact table. Input and output are injected so
// operations can be driven by scripted readers in tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DefaultAffirmative is the confirmation token used when none is configured.
const DefaultAffirmative = "y"

var (
	blue   = color.New(color.FgBlue).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Console reads trimmed lines from a single input source and writes
// formatted text to a single output sink.
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	affirmative string
}

func New(in io.Reader, out io.Writer, affirmative string) *Console {
	if affirmative == "" {
		affirmative = DefaultAffirmative
	}
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		affirmative: affirmative,
	}
}

func (con *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(con.out, format, args...)
}

// ReadLine prompts until the user supplies non-empty text and returns it
// trimmed. It returns "" only when the input source is exhausted; callers
// treat that as a cancelled operation.
func (con *Console) ReadLine(prompt string) string {
	for {
		fmt.Fprintf(con.out, "%s ", prompt)

		line, ok := con.next()
		if !ok {
			return ""
		}
		if line != "" {
			return line
		}

		fmt.Fprintf(con.out, "%s\n", yellow("The field cannot be empty. Try again."))
	}
}

// Pause waits for the user to press ENTER.
func (con *Console) Pause() {
	fmt.Fprintln(con.out, "Press ENTER to continue.")
	con.next()
}

// Confirm asks for the affirmative token and reports whether the user's
// trimmed response matched it, ignoring case.
func (con *Console) Confirm(prompt string) bool {
	response := con.ReadLine(fmt.Sprintf("%s Enter '%s' to confirm.", prompt, con.affirmative))
	return strings.EqualFold(strings.TrimSpace(response), con.affirmative)
}

func (con *Console) next() (string, bool) {
	if !con.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(con.in.Text()), true
}
