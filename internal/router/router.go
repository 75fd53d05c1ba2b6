package router

import (
	"newsapi/internal/handlers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// Handlers
	postHandler := handlers.NewPostHandler(db)
	commentHandler := handlers.NewCommentHandler(db)
	reactionHandler := handlers.NewReactionHandler(db)
	userHandler := handlers.NewUserHandler(db)

	// User routes
	r.POST("/users", userHandler.Register)
	r.GET("/users", userHandler.List)

	// News routes
	news := r.Group("/news")
	{
		news.POST("/posts", postHandler.Create)
		news.GET("/posts", postHandler.List)
		news.GET("/posts/:id", postHandler.Get)
		news.PUT("/posts/:id", postHandler.Update)
		news.DELETE("/posts/:id", postHandler.Delete)
		news.GET("/posts/:id/detalles", postHandler.Detail)

		news.POST("/posts/:id/comments", commentHandler.Create)
		news.GET("/posts/:id/comments", commentHandler.ListByPost)
		news.PUT("/comments/:id", commentHandler.Update)
		news.DELETE("/comments/:id", commentHandler.Delete)

		news.POST("/posts/:id/like", reactionHandler.LikePost)
		news.POST("/posts/:id/dislike", reactionHandler.DislikePost)
		news.POST("/comments/:id/like", reactionHandler.LikeComment)
		news.POST("/comments/:id/dislike", reactionHandler.DislikeComment)
	}
}
