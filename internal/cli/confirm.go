package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// affirmativeAnswer is the only answer ("sim") that confirms un-marking a task
const affirmativeAnswer = "s"

// IsAffirmative reports whether a confirmation answer accepts the action.
// Case and surrounding whitespace are ignored; every other answer declines.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), affirmativeAnswer)
}

// ConfirmSingleKey displays an s/n prompt and waits for a single keypress.
// Returns true for 's'/'S', false for any other key, or error on Ctrl+C.
// No Enter key is required. in must be a terminal.
func ConfirmSingleKey(in *os.File, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s (s/n): ", prompt)

	fd := int(in.Fd())

	// Save original terminal state and ensure it's restored
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return false, fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b := make([]byte, 1)
	if _, err := in.Read(b); err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	key := b[0]

	// Ctrl+C (ASCII 3)
	if key == 3 {
		fmt.Fprint(out, "^C\r\n")
		return false, fmt.Errorf("interrupted")
	}

	// Raw mode: echo the key ourselves and return the carriage explicitly
	if key >= ' ' && key < 0x7f {
		fmt.Fprintf(out, "%c", key)
	}
	fmt.Fprint(out, "\r\n")

	return IsAffirmative(string(key)), nil
}

// terminalFile returns v as an *os.File when it is an interactive terminal
func terminalFile(v interface{}) (*os.File, bool) {
	f, ok := v.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return f, true
}
