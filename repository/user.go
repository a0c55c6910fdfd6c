// Package repository implements the service's data access on top of the
// document store: one repository per collection, each running its
// load-mutate-store cycles through the collection lock so concurrent
// operations observe a linear history.
package repository

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/muskanbandta23/socialmedia/models"
	"github.com/muskanbandta23/socialmedia/store"
)

// UserRepository handles registration and credential checks against the
// users collection.
type UserRepository struct {
	users *store.Collection[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(users *store.Collection[models.User]) *UserRepository {
	return &UserRepository{users: users}
}

// Register creates a new account and returns its id. The duplicate check
// and the append run in the same update cycle, so two concurrent
// registrations with the same email or mobile cannot both succeed.
func (r *UserRepository) Register(username, email, password, mobile string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	err = r.users.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email || u.Mobile == mobile {
				return nil, models.NewDuplicateError("Email or mobile already in use.")
			}
		}
		return append(users, models.User{
			ID:        id,
			Username:  username,
			Email:     email,
			Password:  string(hash),
			Mobile:    mobile,
			Role:      models.RoleUser,
			Followers: []string{},
			Following: []string{},
		}), nil
	})
	if err != nil {
		return "", storeErr(err)
	}
	return id, nil
}

// Authenticate verifies the credentials against the first user with a
// matching email and returns that user's role. No session or token is
// minted; the role is all a caller gets.
func (r *UserRepository) Authenticate(email, password string) (string, error) {
	for _, u := range r.users.Load() {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			break
		}
		return u.Role, nil
	}
	return "", models.NewUnauthorizedError("Invalid credentials.")
}

// storeErr passes application errors through unchanged and wraps raw I/O
// failures from the store as persistence errors.
func storeErr(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewPersistenceError(err)
}
