package handlers

import (
	"net/http"

	"newsapi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{comments: services.NewCommentService(db)}
}

type createCommentBody struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateCommentBody struct {
	Description *string `json:"description"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var body createCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": bindingDetail(err)})
		return
	}

	id, err := h.comments.Create(postID, body.UserID, body.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment created", "comment_id": id})
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	comments, err := h.comments.ListByPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewCommentViews(comments))
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateCommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": bindingDetail(err)})
		return
	}
	if err := h.comments.Update(id, body.Description); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment updated"})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.comments.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
