package database

import (
	"errors"
	"fmt"

	"github.com/ProfessorBrownBear/QuizVibe/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrDuplicateUsername is returned by Register when the username is taken.
var ErrDuplicateUsername = errors.New("username already registered")

// UserStore persists user credentials. Passwords are bcrypt-hashed before
// they are stored; the plaintext is never persisted or logged.
type UserStore struct {
	db   *gorm.DB
	cost int
}

func NewUserStore(db *gorm.DB, bcryptCost int) *UserStore {
	return &UserStore{db: db, cost: bcryptCost}
}

func (s *UserStore) Register(username, password string) (*models.User, error) {
	// Check if username already exists
	if err := s.db.Where("username = ?", username).First(&models.User{}).Error; err == nil {
		return nil, ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Concurrent registration can slip past the check above; the unique
		// index still catches it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
