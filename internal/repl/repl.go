// Package repl hosts the interactive command loop and one handler per user
// command. Handlers own their errors: everything is caught, printed and the
// loop prompts again, so no storage failure ever ends the session.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/danirb97/P4-Quiz/internal/prompt"
	"github.com/danirb97/P4-Quiz/internal/quiz"
)

const promptText = "quiz> "

type REPL struct {
	repo quiz.Repository
	line prompt.Liner
	out  io.Writer
	log  *slog.Logger
	rng  *rand.Rand
}

func New(repo quiz.Repository, line prompt.Liner, out io.Writer, log *slog.Logger) *REPL {
	return &REPL{
		repo: repo,
		line: line,
		out:  out,
		log:  log,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run reads commands until quit, ^C or a closed input stream.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to Quizzes. Type 'help' to see the available commands.")

	for {
		input, err := r.line.Ask(promptText)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "Bye!")
				return nil
			}
			return err
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		cmd := fields[0]
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		if cmd == "q" || cmd == "quit" {
			fmt.Fprintln(r.out, "Bye!")
			return nil
		}
		r.dispatch(ctx, cmd, arg)
	}
}

func (r *REPL) dispatch(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "h", "help":
		r.help()
	case "list":
		r.list(ctx)
	case "show":
		r.show(ctx, arg)
	case "add":
		r.add(ctx)
	case "delete":
		r.delete(ctx, arg)
	case "edit":
		r.edit(ctx, arg)
	case "test":
		r.test(ctx, arg)
	case "p", "play":
		r.play(ctx)
	case "credits":
		r.credits()
	default:
		fmt.Fprintf(r.out, "unknown command %q — type 'help' for the command list\n", cmd)
	}
}

// printError unpacks validation failures into one line per field; every other
// error prints as a single line. Input being closed is not worth a message,
// the loop will notice on its next read.
func (r *REPL) printError(err error) {
	if errors.Is(err, io.EOF) {
		return
	}

	var verr *quiz.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Messages {
			fmt.Fprintln(r.out, color.RedString(msg))
		}
		return
	}
	fmt.Fprintln(r.out, color.RedString(err.Error()))
}
