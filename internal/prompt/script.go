package prompt

import "io"

// Script is a Liner fed from a fixed list of lines. Tests use it to drive the
// REPL without a terminal; it records every prompt and prefill it sees.
type Script struct {
	Lines []string

	// Respond, when set, answers each Ask instead of Lines. It receives the
	// prompt text, so a test can answer a randomly chosen question.
	Respond func(text string) (string, bool)

	Asks     []string
	Prefills []string
}

func (s *Script) Ask(text string) (string, error) {
	s.Asks = append(s.Asks, text)

	if s.Respond != nil {
		line, ok := s.Respond(text)
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}

	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

func (s *Script) Prefill(text string) {
	s.Prefills = append(s.Prefills, text)
}
