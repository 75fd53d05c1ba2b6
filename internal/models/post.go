package models

import (
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       []byte    `json:"-"` // nullable; views expose it base64 encoded
	Likes       int       `gorm:"default:0" json:"likes"`
	Dislikes    int       `gorm:"default:0" json:"dislikes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
