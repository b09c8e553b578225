package repository

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bizdocs/models"
)

const usersKey = "users"

var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	CreateUser(user *models.AppUser) error
	GetUserByEmail(email string) (*models.AppUser, error)
}

// BlobUserRepo keeps app users in the same blob cabinet layout as the
// documents.
type BlobUserRepo struct {
	store *Store[*models.AppUser]
}

func NewUserRepo(blob BlobRepository) *BlobUserRepo {
	return &BlobUserRepo{store: NewStore[*models.AppUser](blob, usersKey)}
}

// CreateUser hashes the password and stores the user. Emails are unique,
// compared case-insensitively.
func (r *BlobUserRepo) CreateUser(user *models.AppUser) error {
	if existing, _ := r.GetUserByEmail(user.Email); existing != nil {
		return ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	// Store a copy; callers blank the hash on their own record before
	// responding and must not reach the stored one.
	stored := *user
	r.store.Add(&stored)
	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	return nil
}

// GetUserByEmail returns a copy of the matching user, or nil when the email
// is unknown. Mutating the result never touches the stored record.
func (r *BlobUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	for _, u := range r.store.List() {
		if strings.EqualFold(u.Email, email) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}
