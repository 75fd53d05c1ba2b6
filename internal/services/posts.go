package services

import (
	"errors"
	"strings"

	"newsapi/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// sanitizer strips all HTML from user supplied text before it is stored.
var sanitizer = bluemonday.StrictPolicy()

func cleanText(s string) string {
	return strings.TrimSpace(sanitizer.Sanitize(s))
}

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

type CreatePostInput struct {
	UserID      uint
	Title       string
	Description string
	Image       []byte // optional
}

// PostUpdate carries a partial update: nil fields are left untouched.
// Counters can be force-set, which covers trusted admin corrections.
type PostUpdate struct {
	UserID      *uint
	Title       *string
	Description *string
	Likes       *int
	Dislikes    *int
	Image       []byte // replaces the stored image only when non-nil
}

func (s *PostService) Create(in CreatePostInput) (uint, error) {
	title := cleanText(in.Title)
	description := cleanText(in.Description)
	if title == "" {
		return 0, invalid("title", "must not be empty")
	}
	if description == "" {
		return 0, invalid("description", "must not be empty")
	}

	post := models.Post{
		UserID:      in.UserID,
		Title:       title,
		Description: description,
		Image:       in.Image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostService) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Update(id uint, in PostUpdate) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.UserID != nil {
		updates["user_id"] = *in.UserID
	}
	if in.Title != nil {
		updates["title"] = cleanText(*in.Title)
	}
	if in.Description != nil {
		updates["description"] = cleanText(*in.Description)
	}
	if in.Likes != nil {
		if *in.Likes < 0 {
			return nil, invalid("likes", "must not be negative")
		}
		updates["likes"] = *in.Likes
	}
	if in.Dislikes != nil {
		if *in.Dislikes < 0 {
			return nil, invalid("dislikes", "must not be negative")
		}
		updates["dislikes"] = *in.Dislikes
	}
	if in.Image != nil {
		updates["image"] = in.Image
	}

	if len(updates) > 0 {
		if err := s.db.Model(&post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	// Re-read so the caller sees exactly what was stored.
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post together with its comments and like rows in one
// transaction, so a reused post id never inherits stale engagement.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// Detail returns a post with its comments in insertion order.
func (s *PostService) Detail(id uint) (*models.Post, []models.Comment, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	var comments []models.Comment
	if err := s.db.Where("post_id = ?", id).Find(&comments).Error; err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}
