package app

import (
	"storynest_backend/docs"
	"storynest_backend/internal/config"
	"storynest_backend/internal/middleware"
	"storynest_backend/internal/model"
	"storynest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerReaderRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// The catalog is browsable without an account.
		public.GET("/books", c.book.ListBooks)
		public.GET("/books/:id", c.book.GetBook)
	}
}

func (a *App) registerReaderRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/books/:id/read", c.reader.ReadBook)
	group.POST("/books/:id/progress", c.reader.UpdateProgress)
	group.POST("/books/:id/bookmark", c.reader.AddBookmark)
	group.POST("/books/:id/interactive", c.reader.CompleteInteractive)
	group.POST("/books/:id/mood", c.reader.SaveMood)

	group.GET("/users/profile", c.user.GetProfile)
	group.PUT("/users/profile", c.user.UpdateProfile)
	group.GET("/users/moods", c.user.GetMoods)
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("")
	admin.Use(middleware.RoleMiddleware(model.Administrator))
	{
		admin.POST("/books", c.book.CreateBook)
		admin.PUT("/books/:id", c.book.UpdateBook)
		admin.DELETE("/books/:id", c.book.DeleteBook)

		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.POST("/admin/upload/cover", c.content.UploadCover)
		admin.POST("/admin/upload/image", c.content.UploadImage)
		admin.POST("/admin/upload/audio", c.content.UploadAudio)
	}
}
