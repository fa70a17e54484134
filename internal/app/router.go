package app

import (
	"devita_backend/docs"
	"devita_backend/internal/middleware"
	"devita_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public: the OAuth handshake happens before any token exists, and
	// refresh authenticates with the cookie alone.
	auth := router.Group("/api/auth")
	{
		auth.GET("/kakao", c.auth.KakaoLogin)
		auth.GET("/kakao/callback", c.auth.KakaoCallback)
		auth.POST("/refresh", c.auth.Refresh)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(a.Config.JWT.AccessSecret))
	{
		api.POST("/auth/logout", c.auth.Logout)

		api.GET("/users/me", c.user.GetMe)
		api.GET("/users/me/preferred-categories", c.user.GetPreferredCategories)
		api.PUT("/users/me/preferred-categories", c.user.UpdatePreferredCategories)

		api.GET("/rewards", c.reward.GetReward)
		api.POST("/rewards/nutrition/use", c.reward.UseNutrition)

		api.POST("/todos", c.todo.CreateTodo)
		api.GET("/todos/calendar", c.todo.Calendar)
		api.PUT("/todos/:todoId", c.todo.UpdateTodo)
		api.DELETE("/todos/:todoId", c.todo.DeleteTodo)
		api.PATCH("/todos/:todoId/toggle", c.todo.ToggleTodo)

		api.GET("/categories", c.category.ListCategories)
		api.POST("/categories", c.category.CreateCategory)
		api.PUT("/categories/:categoryId", c.category.UpdateCategory)
		api.DELETE("/categories/:categoryId", c.category.DeleteCategory)

		api.GET("/posts", c.post.ListPosts)
		api.GET("/posts/my", c.post.ListMyPosts)
		api.POST("/posts", c.post.CreatePost)
		api.GET("/posts/:postId", c.post.GetPost)
		api.PUT("/posts/:postId", c.post.UpdatePost)
		api.DELETE("/posts/:postId", c.post.DeletePost)
		api.POST("/posts/:postId/like", c.post.LikePost)
		api.POST("/posts/:postId/like/pessimistic", c.post.LikePostPessimistic)
		api.POST("/posts/:postId/like/optimistic", c.post.LikePostOptimistic)

		api.GET("/follows/followers", c.follow.Followers)
		api.GET("/follows/followings", c.follow.Followings)
		api.GET("/follows/counts", c.follow.Counts)
		api.POST("/follows/:userId", c.follow.Follow)
		api.DELETE("/follows/:userId", c.follow.Unfollow)

		api.GET("/missions/daily", c.mission.DailyMission)
		api.GET("/missions/free", c.mission.FreeMissions)
		api.POST("/missions/free", c.mission.SaveFreeMission)
	}
}
