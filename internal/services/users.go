package services

import (
	"errors"
	"fmt"
	"strings"

	"newsapi/internal/models"
	"newsapi/internal/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account. The username starts from the email local
// part and is suffixed with a counter when that name is already in use, so
// distinct emails sharing a local part never collide. The email must be
// unused.
func (s *UserService) Register(email, password string) (*models.User, error) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return nil, invalid("email", "malformed address")
	}

	var taken int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrEmailTaken
	}

	username, err := s.freeUsername(parts[0])
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     "user",
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race on one of the unique columns; report the email
			// as taken only when it is the conflicting one.
			var races int64
			s.db.Model(&models.User{}).Where("email = ?", email).Count(&races)
			if races > 0 {
				return nil, ErrEmailTaken
			}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) freeUsername(base string) (string, error) {
	name := base
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ?", name).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return name, nil
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
