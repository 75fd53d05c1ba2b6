package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"newsapi/internal/services"
	"newsapi/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors to HTTP statuses. Duplicate likes map
// to 400 to stay wire-compatible with the previous API.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
	case errors.Is(err, services.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

// pathID parses the :id path parameter and writes the error response
// itself when the value is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

// bindingDetail flattens binding failures into a short field list instead
// of the verbose validator error string.
func bindingDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
