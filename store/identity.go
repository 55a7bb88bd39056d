package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J3FF-omg/SaveFood/models"
)

// Identity holds user records and answers credential lookups.
type Identity struct {
	db *gorm.DB
	mu sync.Mutex // serializes the uniqueness check against the insert
}

func NewIdentity(db *gorm.DB) *Identity {
	return &Identity{db: db}
}

// Register creates a new user with a freshly generated identifier. It fails
// with ErrUsernameTaken if any existing user has the same username
// (case-sensitive exact match) and with ErrInvalid on an unknown role.
// Nothing is written on failure.
func (s *Identity) Register(username, password, email, phone string, role models.UserRole) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalid)
	}
	if !models.ValidRole(role) {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalid, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Role:     role,
		Email:    email,
		Phone:    phone,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate returns the user whose username and password both match
// exactly. Credentials are compared as plain values; hashing is a documented
// out-of-scope weakness, not an oversight to fix here.
func (s *Identity) Authenticate(username, password string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Get looks up a user by identifier.
func (s *Identity) Get(id string) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// List returns all users, insertion-ordered.
func (s *Identity) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
