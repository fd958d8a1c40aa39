package repo

import (
	"errors"
	"sync"

	"github.com/sebasmzg/characters-api/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrUserExists = errors.New("user already exists")
)

// UserRepo keeps users in memory, keyed by email. Email is the primary key:
// at most one user per address, users are never deleted.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return models.User{}, ErrUserExists
	}
	user.ID = NextID()
	r.users[user.Email] = user
	return user, nil
}

func (r *UserRepo) FindByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepo) SetRefreshToken(email, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return ErrNotFound
	}
	user.RefreshToken = token
	r.users[email] = user
	return nil
}

func (r *UserRepo) ClearRefreshToken(email string) error {
	return r.SetRefreshToken(email, "")
}
