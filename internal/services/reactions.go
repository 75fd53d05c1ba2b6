package services

import (
	"errors"

	"newsapi/internal/models"

	"gorm.io/gorm"
)

type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// LikePost records one like per user per post. The pre-check gives a clean
// error for the common case; the unique index on (user_id, post_id) is the
// final arbiter when two requests race, so the insert itself fails for the
// loser and the counter is bumped at most once.
func (s *ReactionService) LikePost(userID, postID uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	var existing models.Like
	err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return ErrAlreadyLiked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return err
	}

	if err := tx.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}

	if err := tx.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// DislikePost bumps the dislike counter. There is no dislike fact table,
// so repeated dislikes from the same user all count.
func (s *ReactionService) DislikePost(postID uint) error {
	res := s.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("dislikes", gorm.Expr("dislikes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// LikeComment bumps the like counter unconditionally; comments have no
// dedup entity.
func (s *ReactionService) LikeComment(commentID uint) error {
	res := s.db.Model(&models.Comment{}).Where("id = ?", commentID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *ReactionService) DislikeComment(commentID uint) error {
	res := s.db.Model(&models.Comment{}).Where("id = ?", commentID).
		UpdateColumn("dislikes", gorm.Expr("dislikes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
