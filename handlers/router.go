package handlers

import (
	"fmt"
	"net/http"

	"news-forum-api/helper"
	"news-forum-api/middleware"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Services struct {
	Articles  services.ArticleService
	Comments  services.CommentService
	Topics    services.TopicService
	Users     services.UserService
	Endpoints services.EndpointService
}

func NewRouter(svc Services, h *helper.HTTPHelper, logger *zap.Logger) *gin.Engine {
	apiHandler := NewAPIHandler(svc.Endpoints, h)
	topicHandler := NewTopicHandler(svc.Topics, h)
	articleHandler := NewArticleHandler(svc.Articles, h)
	commentHandler := NewCommentHandler(svc.Comments, h)
	userHandler := NewUserHandler(svc.Users, h)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			h.SendError(c, fmt.Errorf("panic: %v", recovered))
		}),
		middleware.Metrics(),
	)

	// Health check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("", apiHandler.GetAPI)

		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.GetTopics)
			topics.POST("", topicHandler.CreateTopic)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateArticleVotes)
			articles.DELETE("/:article_id", articleHandler.DeleteArticle)
			articles.GET("/:article_id/comments", commentHandler.GetComments)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		comments := api.Group("/comments")
		{
			comments.PATCH("/:comment_id", commentHandler.UpdateCommentVotes)
			comments.DELETE("/:comment_id", commentHandler.DeleteComment)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:username", userHandler.GetUser)
		}
	}

	// Unmatched methods fall through to NoRoute as well
	router.NoRoute(h.SendPathNotFound)

	return router
}

// WithCORS wraps the router for browser clients on the given origins.
func WithCORS(handler http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(handler)
}
