package quiz

import (
	"context"
	"sort"
	"time"
)

// MemoryRepository keeps quizzes in a map. It backs the --memory mode and the
// REPL handler tests; it applies the same validation as the sqlite store.
type MemoryRepository struct {
	quizzes map[uint]Quiz
	nextID  uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		quizzes: make(map[uint]Quiz),
		nextID:  1,
	}
}

func (r *MemoryRepository) Create(_ context.Context, q *Quiz) error {
	if err := Validate(q); err != nil {
		return err
	}

	q.ID = r.nextID
	r.nextID++
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	r.quizzes[q.ID] = *q
	return nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]Quiz, error) {
	all := make([]Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		all = append(all, q)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id uint) (*Quiz, error) {
	q, ok := r.quizzes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id uint) (int64, error) {
	if _, ok := r.quizzes[id]; !ok {
		return 0, nil
	}
	delete(r.quizzes, id)
	return 1, nil
}

func (r *MemoryRepository) Save(_ context.Context, q *Quiz) error {
	if err := Validate(q); err != nil {
		return err
	}
	if _, ok := r.quizzes[q.ID]; !ok {
		return ErrNotFound
	}

	q.UpdatedAt = time.Now()
	r.quizzes[q.ID] = *q
	return nil
}
