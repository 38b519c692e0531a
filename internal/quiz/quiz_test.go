package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesIgnoresCaseAndWhitespace(t *testing.T) {
	q := Quiz{Question: "Capital of Spain?", Answer: "Madrid"}

	for _, answer := range []string{"Madrid", " madrid ", "MADRID", "\tMaDrId\n"} {
		assert.True(t, q.Matches(answer), "expected %q to match", answer)
	}
	assert.False(t, q.Matches("Barcelona"))
	assert.False(t, q.Matches(""))
}

func TestValidateEmptyFields(t *testing.T) {
	err := Validate(&Quiz{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Messages, 2)
	assert.Contains(t, verr.Messages, "question must not be empty")
	assert.Contains(t, verr.Messages, "answer must not be empty")

	err = Validate(&Quiz{Question: "2+2?", Answer: "   "})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"answer must not be empty"}, verr.Messages)

	require.NoError(t, Validate(&Quiz{Question: "2+2?", Answer: "4"}))
}

func TestMemoryRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := &Quiz{Question: "2+2?", Answer: "4"}
	second := &Quiz{Question: "Sky color?", Answer: "Blue"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2+2?", all[0].Question)
	assert.Equal(t, "Sky color?", all[1].Question)

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "4", got.Answer)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	got.Answer = "four"
	require.NoError(t, repo.Save(ctx, got))
	saved, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "four", saved.Answer)

	deleted, err := repo.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestMemoryRepositoryCreateRejectsEmpty(t *testing.T) {
	repo := NewMemoryRepository()
	err := repo.Create(context.Background(), &Quiz{Question: "2+2?"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
