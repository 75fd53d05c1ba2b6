package services

import (
	"fmt"
	"testing"

	"newsapi/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))
	return gdb
}

func seedUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	user := models.User{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedPost(t *testing.T, db *gorm.DB, userID uint) uint {
	t.Helper()
	svc := NewPostService(db)
	id, err := svc.Create(CreatePostInput{UserID: userID, Title: "T", Description: "D"})
	require.NoError(t, err)
	return id
}
