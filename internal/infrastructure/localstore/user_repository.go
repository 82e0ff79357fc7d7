package localstore

import (
	"context"

	"github.com/elegance/timesheet-system/internal/core/domain"
)

// UserRepository persists the logged-in user blob.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Get(_ context.Context) (*domain.User, bool) {
	var user domain.User
	if !r.store.Get(userKey, &user) {
		return nil, false
	}
	return &user, true
}

func (r *UserRepository) Save(_ context.Context, user *domain.User) error {
	return r.store.Set(userKey, user)
}

func (r *UserRepository) Clear(_ context.Context) error {
	return r.store.Remove(userKey)
}
