package services

import (
	"errors"

	"newsapi/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create attaches a new comment to an existing post. The post is looked up
// first so a comment can never reference a missing post.
func (s *CommentService) Create(postID, userID uint, description string) (uint, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, err
	}

	comment := models.Comment{
		PostID:      postID,
		UserID:      userID,
		Description: cleanText(description),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// ListByPost returns the comments of a post. An unknown post id yields an
// empty slice, not an error.
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Update(id uint, description *string) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if description == nil {
		return nil
	}
	return s.db.Model(&comment).Update("description", cleanText(*description)).Error
}

func (s *CommentService) Delete(id uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.db.Delete(&comment).Error
}
