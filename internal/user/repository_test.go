package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIDsContinueAfterSeed(t *testing.T) {
	repo := NewInMemoryRepository([]User{
		{ID: 7, Name: "Ana", Email: "ana@example.com", Phone: "555-0100"},
	})

	created, err := repo.Create(context.Background(), CreateInput{Name: "Bram", Email: "bram@example.com", Phone: "555-0101"})

	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}

func TestInMemoryListReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository([]User{
		{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555-0100"},
	})

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	users[0].Name = "changed"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].Name)
}
