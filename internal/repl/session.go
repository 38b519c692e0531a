package repl

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/danirb97/P4-Quiz/internal/banner"
	"github.com/danirb97/P4-Quiz/internal/prompt"
	"github.com/danirb97/P4-Quiz/internal/quiz"
)

type sessionState int

const (
	stateRunning sessionState = iota
	stateAnswering
	stateEnded
)

// Session is one round of play mode. It owns the remaining set of quizzes and
// the running score; questions are drawn uniformly at random without
// replacement until the first miss or the set runs dry.
type Session struct {
	id        uuid.UUID
	remaining []quiz.Quiz
	score     int

	line prompt.Liner
	out  io.Writer
	rng  *rand.Rand
	log  *slog.Logger
}

func NewSession(quizzes []quiz.Quiz, line prompt.Liner, out io.Writer, rng *rand.Rand, log *slog.Logger) *Session {
	return &Session{
		id:        uuid.New(),
		remaining: append([]quiz.Quiz(nil), quizzes...),
		line:      line,
		out:       out,
		rng:       rng,
		log:       log,
	}
}

func (s *Session) Run() {
	s.log.Debug("play session started", "session", s.id, "quizzes", len(s.remaining))

	var current quiz.Quiz
	state := stateRunning
	for state != stateEnded {
		switch state {
		case stateRunning:
			if len(s.remaining) == 0 {
				fmt.Fprintln(s.out, "Nothing left to ask — you cleared the whole set!")
				s.finish()
				state = stateEnded
				continue
			}
			idx := s.rng.Intn(len(s.remaining))
			current = s.remaining[idx]
			s.remaining = append(s.remaining[:idx], s.remaining[idx+1:]...)
			state = stateAnswering

		case stateAnswering:
			answer, err := s.line.Ask(current.Question + " ")
			if err == nil && current.Matches(answer) {
				s.score++
				fmt.Fprintf(s.out, "%s Score so far: %d\n", color.GreenString("Correct!"), s.score)
				state = stateRunning
				continue
			}
			fmt.Fprintf(s.out, "%s The answer was: %s\n", color.RedString("Wrong!"), current.Answer)
			s.finish()
			state = stateEnded
		}
	}

	s.log.Debug("play session ended", "session", s.id, "score", s.score)
}

// Score returns the number of correctly answered quizzes so far.
func (s *Session) Score() int {
	return s.score
}

func (s *Session) finish() {
	fmt.Fprintf(s.out, "Final score: %d\n", s.score)
	banner.Render(s.out, strconv.Itoa(s.score))
}
