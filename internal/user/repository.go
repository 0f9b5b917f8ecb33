package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cterryc/netlify-two/internal/apperr"
)

type Repository interface {
	Create(ctx context.Context, input CreateInput) (User, error)
	List(ctx context.Context) ([]User, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, user := range seed {
		repo.users = append(repo.users, user)
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == input.Email {
			return User{}, apperr.DuplicateEmail()
		}
	}

	now := time.Now().UTC()
	user := User{
		ID:        r.nextID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)

	// Newest first, matching the Postgres query ordering.
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})

	return users, nil
}
