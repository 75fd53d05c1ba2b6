package handlers

import (
	"net/http"

	"newsapi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReactionHandler struct {
	reactions *services.ReactionService
}

func NewReactionHandler(db *gorm.DB) *ReactionHandler {
	return &ReactionHandler{reactions: services.NewReactionService(db)}
}

type likePostForm struct {
	UserID uint `form:"user_id" binding:"required"`
}

func (h *ReactionHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var form likePostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": bindingDetail(err)})
		return
	}
	if err := h.reactions.LikePost(form.UserID, postID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "like registered"})
}

func (h *ReactionHandler) DislikePost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reactions.DislikePost(postID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dislike registered on post"})
}

func (h *ReactionHandler) LikeComment(c *gin.Context) {
	commentID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reactions.LikeComment(commentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "like registered on comment"})
}

func (h *ReactionHandler) DislikeComment(c *gin.Context) {
	commentID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reactions.DislikeComment(commentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dislike registered on comment"})
}
