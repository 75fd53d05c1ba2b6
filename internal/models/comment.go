package models

import (
	"time"
)

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	Post        Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Likes       int       `gorm:"default:0" json:"likes"`
	Dislikes    int       `gorm:"default:0" json:"dislikes"`
	CreatedAt   time.Time `json:"created_at"`
}
