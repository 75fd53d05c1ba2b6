package models

import (
	"time"
)

// Like is a fact record: at most one row per (user, post) pair, enforced
// by the composite unique index. Rows are only ever created or deleted.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post_like" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post_like" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
