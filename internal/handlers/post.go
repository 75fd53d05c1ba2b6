package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"newsapi/internal/services"
	"newsapi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{posts: services.NewPostService(db)}
}

type createPostForm struct {
	UserID      uint   `form:"user_id" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var form createPostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": bindingDetail(err)})
		return
	}

	var image []byte
	if fh, err := c.FormFile("image"); err == nil {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read image"})
			return
		}
		image = data
	}

	id, err := h.posts.Create(services.CreatePostInput{
		UserID:      form.UserID,
		Title:       form.Title,
		Description: form.Description,
		Image:       image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post created", "post_id": id})
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewPostViews(posts))
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewPostView(*post))
}

// Update applies a partial multipart update. Only submitted fields change;
// the image is replaced only for a non-empty upload with an image/* type.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var upd services.PostUpdate
	if v, ok := c.GetPostForm("user_id"); ok {
		userID := utils.ParseID(v)
		if userID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user_id"})
			return
		}
		upd.UserID = &userID
	}
	if v, ok := c.GetPostForm("title"); ok {
		upd.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		upd.Description = &v
	}
	if v, ok := c.GetPostForm("likes"); ok {
		likes, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid likes"})
			return
		}
		upd.Likes = &likes
	}
	if v, ok := c.GetPostForm("dislikes"); ok {
		dislikes, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid dislikes"})
			return
		}
		upd.Dislikes = &dislikes
	}

	if fh, err := c.FormFile("image"); err == nil && fh.Filename != "" &&
		strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read image"})
			return
		}
		if len(data) > 0 {
			upd.Image = data
		}
	}

	post, err := h.posts.Update(id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated", "post": services.NewPostView(*post)})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, comments, err := h.posts.Detail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewPostDetailView(*post, comments))
}
