package services

import (
	"encoding/base64"
	"time"

	"newsapi/internal/models"
)

// PostView is the transport shape of a post. The image travels base64
// encoded, or null when the post has none.
type PostView struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Likes       int     `json:"likes"`
	Dislikes    int     `json:"dislikes"`
	Image       *string `json:"image"`
}

type CommentView struct {
	ID          uint   `json:"id"`
	PostID      uint   `json:"post_id"`
	UserID      uint   `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	Likes       int    `json:"likes"`
	Dislikes    int    `json:"dislikes"`
}

type PostDetailView struct {
	PostView
	Comments []CommentView `json:"comments"`
}

func NewPostView(p models.Post) PostView {
	var image *string
	if len(p.Image) > 0 {
		encoded := base64.StdEncoding.EncodeToString(p.Image)
		image = &encoded
	}
	return PostView{
		ID:          p.ID,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		Title:       p.Title,
		Description: p.Description,
		Likes:       p.Likes,
		Dislikes:    p.Dislikes,
		Image:       image,
	}
}

func NewPostViews(posts []models.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = NewPostView(p)
	}
	return views
}

func NewCommentView(c models.Comment) CommentView {
	return CommentView{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		Description: c.Description,
		Likes:       c.Likes,
		Dislikes:    c.Dislikes,
	}
}

func NewCommentViews(comments []models.Comment) []CommentView {
	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = NewCommentView(c)
	}
	return views
}

func NewPostDetailView(p models.Post, comments []models.Comment) PostDetailView {
	return PostDetailView{
		PostView: NewPostView(p),
		Comments: NewCommentViews(comments),
	}
}
