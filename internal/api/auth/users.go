package auth

import (
	"errors"
	"strings"

	"santix-backoffice/internal/domain/users"

	"gorm.io/gorm"
)

type googleProfile struct {
	Sub   string
	Email string
	Name  string
}

// userStore is the minimal persistence surface ensureGoogleUser needs.
type userStore interface {
	BySub(sub string) (*users.User, error)
	ByEmail(email string) (*users.User, error)
	Create(u *users.User) error
	LinkSub(id uint, sub string) (*users.User, error)
}

// ensureGoogleUser idempotently resolves a federated identity to a local
// user: lookup by Google subject, then by email (linking the subject if the
// row predates federated sign-in), else create. An already-linked subject is
// never overwritten.
func ensureGoogleUser(store userStore, p googleProfile) (*users.User, error) {
	user, err := store.BySub(p.Sub)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = store.ByEmail(p.Email)
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		name := p.Name
		if name == "" {
			name, _, _ = strings.Cut(p.Email, "@")
		}
		sub := p.Sub
		user = &users.User{
			Name:      &name,
			Email:     p.Email,
			Role:      users.RoleCustomer,
			Status:    users.StatusActive,
			GoogleSub: &sub,
		}
		if err := store.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if user.GoogleSub == nil {
		return store.LinkSub(user.ID, p.Sub)
	}
	return user, nil
}

// dbUserStore backs userStore with the shared gorm handle.
type dbUserStore struct {
	db *gorm.DB
}

func (s dbUserStore) BySub(sub string) (*users.User, error) {
	var user users.User
	err := s.db.Where("google_sub = ?", sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s dbUserStore) ByEmail(email string) (*users.User, error) {
	var user users.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s dbUserStore) Create(u *users.User) error {
	return s.db.Create(u).Error
}

func (s dbUserStore) LinkSub(id uint, sub string) (*users.User, error) {
	if err := s.db.Model(&users.User{}).Where("id = ?", id).Update("google_sub", sub).Error; err != nil {
		return nil, err
	}
	var user users.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
