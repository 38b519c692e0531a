package quiz

import "context"

// Repository is the storage collaborator for quizzes. Implementations return
// ErrNotFound for missing ids and *ValidationError when a write carries empty
// fields; any other error is passed through as-is.
type Repository interface {
	// Create validates and inserts a new quiz, filling its ID.
	Create(ctx context.Context, q *Quiz) error

	// FindAll returns every stored quiz in id order.
	FindAll(ctx context.Context) ([]Quiz, error)

	// FindByID returns the quiz with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Quiz, error)

	// DeleteByID removes the quiz with the given id and reports how many
	// rows were affected. A missing id deletes zero rows and is not an error.
	DeleteByID(ctx context.Context, id uint) (int64, error)

	// Save persists an in-place mutation of an existing quiz.
	Save(ctx context.Context, q *Quiz) error
}
