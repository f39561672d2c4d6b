package app

import (
	"daily_quiz_backend/docs"
	"daily_quiz_backend/internal/middleware"
	"daily_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		a.registerPlayerRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}
}

func (a *App) registerPlayerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/profile", c.auth.GetProfile)
	rg.PUT("/auth/profile", c.auth.UpdateProfile)
	rg.POST("/auth/change-password", c.auth.ChangePassword)

	quiz := rg.Group("/quiz")
	{
		quiz.GET("/today", c.quiz.GetToday)
		quiz.POST("/submit", c.quiz.Submit)
		quiz.GET("/result/:quizId", c.quiz.GetResult)
		quiz.GET("/history", c.quiz.History)
		quiz.GET("/leaderboard", c.quiz.Leaderboard)
	}

	positions := rg.Group("/positions")
	{
		positions.GET("", c.catalog.ListPositions)
		positions.GET("/me/questions", c.catalog.MyPositionQuestions)
		positions.GET("/:positionId", c.catalog.GetPosition)
		positions.GET("/:positionId/questions", c.catalog.PositionQuestions)
		positions.GET("/:positionId/questions/random", c.catalog.PositionRandomQuestions)
	}

	rg.GET("/cities", c.catalog.ListCities)
	rg.GET("/institutions", c.catalog.ListInstitutions)
	rg.GET("/categories", c.catalog.ListCategories)

	user := rg.Group("/user")
	{
		user.POST("/feedback", c.user.SubmitFeedback)
		user.GET("/notifications", c.user.Notifications)
		user.PUT("/notifications/read-all", c.user.MarkAllNotificationsRead)
		user.PUT("/notifications/:id/read", c.user.MarkNotificationRead)
		user.GET("/stats", c.user.Stats)
	}

	rg.POST("/media/upload", c.media.Upload)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		questions := admin.Group("/questions")
		{
			questions.GET("", c.admin.ListQuestions)
			questions.POST("", c.admin.CreateQuestion)
			questions.PUT("/:id", c.admin.UpdateQuestion)
			questions.DELETE("/:id", c.admin.DeleteQuestion)
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", c.admin.ListCategoriesWithCounts)
			categories.POST("", c.admin.CreateCategory)
			categories.PUT("/:id", c.admin.UpdateCategory)
			categories.DELETE("/:id", c.admin.DeleteCategory)
		}

		positions := admin.Group("/positions")
		{
			positions.POST("", c.admin.CreatePosition)
			positions.PUT("/:id", c.admin.UpdatePosition)
			positions.DELETE("/:id", c.admin.DeletePosition)
		}

		cities := admin.Group("/cities")
		{
			cities.POST("", c.admin.CreateCity)
			cities.PUT("/:id", c.admin.UpdateCity)
			cities.DELETE("/:id", c.admin.DeleteCity)
		}

		institutions := admin.Group("/institutions")
		{
			institutions.POST("", c.admin.CreateInstitution)
			institutions.PUT("/:id", c.admin.UpdateInstitution)
			institutions.DELETE("/:id", c.admin.DeleteInstitution)
		}

		users := admin.Group("/users")
		{
			users.GET("", c.admin.ListUsers)
			users.PUT("/:id/active", c.admin.SetUserActive)
		}

		admin.GET("/feedback", c.admin.ListFeedback)
		admin.POST("/announce", c.admin.Announce)

		stats := admin.Group("/stats")
		{
			stats.GET("/dashboard", c.admin.Dashboard)
			stats.GET("/users/:id", c.admin.UserStats)
			stats.GET("/players", c.admin.PlayerStats)
			stats.GET("/players/charts", c.admin.PlayerCharts)
		}

		admin.POST("/quiz/generate", c.admin.GenerateQuiz)

		reports := admin.Group("/reports")
		{
			reports.GET("/users", c.admin.UsersReport)
			reports.GET("/quizzes", c.admin.QuizReport)
		}

		admin.DELETE("/media", c.media.Delete)
	}
}
