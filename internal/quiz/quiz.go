package quiz

import (
	"fmt"
	"strings"
	"time"
)

// Quiz is a single question/answer pair, the only persisted entity.
type Quiz struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"not null" validate:"required"`
	Answer    string `gorm:"not null" validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q Quiz) String() string {
	return fmt.Sprintf("[%d] %s", q.ID, q.Question)
}

// Matches reports whether a user-supplied answer matches the stored one.
// Comparison ignores case and surrounding whitespace, so "Madrid",
// " madrid " and "MADRID" are all equivalent.
func (q Quiz) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.Answer))
}
