package app

import (
	"time"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/middleware"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/pkg/monitoring"
	"lexilearn_backend/pkg/security"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	a.registerPublicRoutes(router, c, cfg)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/auth/profile", c.auth.GetProfile)

		a.registerTeacherRoutes(api, c)
		a.registerContentRoutes(api, c)
		a.registerProgressRoutes(api, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api/auth")
	// Login endpoints rate-limit harder than the rest of the API: student
	// secret codes are guessable in principle, so the window is tight.
	public.Use(security.RateLimiter(cfg.RateLimit.LoginMaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/student-login", c.auth.StudentLogin)
	}
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	students := rg.Group("/users/students")
	students.Use(middleware.RoleMiddleware(model.Teacher))
	{
		students.POST("", c.student.Create)
		students.GET("", c.student.List)
		students.GET("/:id", c.student.Get)
		students.PUT("/:id", c.student.Update)
		students.DELETE("/:id", c.student.Delete)
		students.POST("/:id/secret-code", c.student.RegenerateSecretCode)
		students.GET("/:id/progress", c.student.Progress)
	}
}

func (a *App) registerContentRoutes(rg *gin.RouterGroup, c *controllers) {
	teacherOnly := middleware.RoleMiddleware(model.Teacher)

	modules := rg.Group("/modules")
	{
		modules.GET("", c.module.List)
		modules.GET("/:id", c.module.Get)
		modules.POST("", teacherOnly, c.module.Create)
		modules.PUT("/:id", teacherOnly, c.module.Update)
		modules.DELETE("/:id", teacherOnly, c.module.Delete)
		modules.POST("/:id/media", teacherOnly, c.module.UploadMedia)
	}

	quizzes := rg.Group("/quizzes")
	{
		quizzes.GET("", c.quiz.List)
		quizzes.GET("/:id", c.quiz.Get)
		quizzes.POST("", teacherOnly, c.quiz.Create)
		quizzes.PUT("/:id", teacherOnly, c.quiz.Update)
		quizzes.DELETE("/:id", teacherOnly, c.quiz.Delete)
	}

	assignments := rg.Group("/assignments")
	{
		assignments.GET("", c.assignment.List)
		assignments.GET("/:id", c.assignment.Get)
		assignments.POST("", teacherOnly, c.assignment.Create)
		assignments.PUT("/:id", teacherOnly, c.assignment.Update)
		assignments.DELETE("/:id", teacherOnly, c.assignment.Delete)
		assignments.POST("/:id/media", teacherOnly, c.assignment.UploadMedia)
		assignments.POST("/:id/quiz/submit", middleware.RoleMiddleware(model.Student), c.assignment.SubmitQuiz)
		assignments.GET("/:id/submissions", c.assignment.ListSubmissions)
	}
}

func (a *App) registerProgressRoutes(rg *gin.RouterGroup, c *controllers) {
	progress := rg.Group("/progress")
	{
		progress.POST("", middleware.RoleMiddleware(model.Student), c.progress.Record)
		progress.GET("", c.progress.List)
		progress.GET("/summary", c.progress.StudentSummary)
		progress.GET("/roster", middleware.RoleMiddleware(model.Teacher), c.progress.RosterSummary)
		progress.GET("/modules/:id/summary", middleware.RoleMiddleware(model.Teacher), c.progress.ModuleSummary)
		progress.GET("/quizzes/:id/summary", middleware.RoleMiddleware(model.Teacher), c.progress.QuizSummary)
		progress.GET("/:id", c.progress.Get)
		progress.PUT("/:id", middleware.RoleMiddleware(model.Student), c.progress.Update)
	}
}
