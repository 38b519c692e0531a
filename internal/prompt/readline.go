package prompt

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// Readline is the interactive Liner backed by chzyer/readline. It supports
// pre-filling the input buffer, which the edit command uses to show the
// current question and answer for in-place editing.
type Readline struct {
	rl      *readline.Instance
	pending string
}

func NewReadline() (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl}, nil
}

func (r *Readline) Ask(text string) (string, error) {
	r.rl.SetPrompt(text)
	if r.pending != "" {
		_, _ = r.rl.WriteStdin([]byte(r.pending))
		r.pending = ""
	}

	line, err := r.rl.Readline()
	if err != nil {
		// ^C and a closed stdin both end the session the same way.
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (r *Readline) Prefill(text string) {
	r.pending = text
}

// Stdout returns a writer that cooperates with the prompt redraw.
func (r *Readline) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *Readline) Close() error {
	return r.rl.Close()
}
