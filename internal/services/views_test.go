package services

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"newsapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostViewWithoutImage(t *testing.T) {
	view := NewPostView(models.Post{
		ID:        1,
		UserID:    2,
		Title:     "T",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["image"])
	assert.Equal(t, "2024-05-01T12:00:00Z", decoded["created_at"])
}

func TestPostViewEncodesImage(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	view := NewPostView(models.Post{ID: 1, Image: raw})

	require.NotNil(t, view.Image)
	decoded, err := base64.StdEncoding.DecodeString(*view.Image)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestPostDetailView(t *testing.T) {
	post := models.Post{ID: 1, UserID: 2, Title: "T"}
	comments := []models.Comment{
		{ID: 10, PostID: 1, UserID: 3, Description: "a"},
		{ID: 11, PostID: 1, UserID: 4, Description: "b"},
	}

	detail := NewPostDetailView(post, comments)
	assert.Equal(t, uint(1), detail.ID)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "a", detail.Comments[0].Description)
	assert.Equal(t, uint(1), detail.Comments[1].PostID)
}
