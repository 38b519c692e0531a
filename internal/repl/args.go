package repl

import (
	"strconv"

	"github.com/danirb97/P4-Quiz/internal/quiz"
)

// ParseID turns the raw argument of an id-taking command into a quiz id.
// An absent argument fails with quiz.ErrMissingParam and one without leading
// digits with quiz.ErrInvalidParam. A numeric prefix is enough: "3abc"
// parses as 3, which keeps the historic behavior of the tool.
func ParseID(arg string) (uint, error) {
	if arg == "" {
		return 0, quiz.ErrMissingParam
	}

	n := 0
	for n < len(arg) && arg[n] >= '0' && arg[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, quiz.ErrInvalidParam
	}

	id, err := strconv.ParseUint(arg[:n], 10, 32)
	if err != nil {
		return 0, quiz.ErrInvalidParam
	}
	return uint(id), nil
}
