// Package prompt is the line-input collaborator for the REPL. Handlers ask
// questions through a Liner and never touch the terminal directly, so tests
// drive them with a Script instead of a tty.
package prompt

// Liner reads one line of user input per Ask call.
type Liner interface {
	// Ask displays text as the prompt and returns the entered line without
	// its trailing newline. io.EOF reports that input is closed.
	Ask(text string) (string, error)

	// Prefill seeds the next input line with text so the user can edit it
	// in place instead of retyping.
	Prefill(text string)
}
