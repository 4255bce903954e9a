package store

import (
	"errors"

	"gorm.io/gorm"

	"almanac/models"
)

// UserStore gates access to the users table for the login scaffolding.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// HasUsers reports whether initial setup has been completed.
func (s *UserStore) HasUsers() (bool, error) {
	var count int64
	if result := s.db.Model(&models.User{}).Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *UserStore) GetByUsername(username string) (models.User, error) {
	var user models.User
	if result := s.db.Where("username = ?", username).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, result.Error
	}
	return user, nil
}

func (s *UserStore) Get(id uint) (models.User, error) {
	var user models.User
	if result := s.db.First(&user, id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, result.Error
	}
	return user, nil
}
