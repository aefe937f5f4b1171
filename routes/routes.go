package routes

import (
	"Henteklar/controllers"
	"Henteklar/middlewares"
	"Henteklar/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, tokens middlewares.SessionParser, accounts middlewares.SessionRefresher) {
	auth := middlewares.AuthMiddleware(tokens, accounts)
	staffOnly := middlewares.RequireRole(models.RoleAdmin, models.RoleStaff)
	adminOnly := middlewares.RequireRole(models.RoleAdmin)

	// Public routes
	r.POST("/auth/login", controllers.Login)
	r.POST("/auth/register", controllers.Register)
	r.GET("/auth/:provider/start", controllers.ProviderStart)
	r.POST("/auth/:provider/callback", controllers.ProviderCallback)
	r.POST("/auth/password-reset", controllers.RequestPasswordReset)
	r.GET("/translations", controllers.GetTranslations)

	r.POST("/auth/logout", auth, controllers.Logout)
	r.GET("/ws", auth, controllers.ServeWs)
	r.GET("/debug/session", auth, adminOnly, controllers.DebugSession)

	me := r.Group("/me")
	me.Use(auth)
	{
		me.GET("", controllers.GetMe)
		me.PUT("", controllers.UpdateMe)
		me.POST("/password", controllers.ChangePassword)
	}

	children := r.Group("/children")
	children.Use(auth)
	{
		children.GET("", controllers.ListChildren)
		children.GET("/:id", controllers.ReadChild)
		children.POST("/:id/check-in", controllers.CheckIn)
		children.POST("/:id/check-out", controllers.CheckOut)

		children.POST("", staffOnly, controllers.CreateChild)
		children.PUT("/:id", staffOnly, controllers.UpdateChild)
		children.DELETE("/:id", staffOnly, controllers.DeleteChild)
		children.POST("/:id/notes", staffOnly, controllers.AddNote)
		children.DELETE("/:id/notes/:noteId", staffOnly, controllers.DeleteNote)
	}

	r.GET("/logs", auth, controllers.GetLogs)
	r.GET("/history", auth, controllers.GetHistory)

	users := r.Group("/users")
	users.Use(auth, adminOnly)
	{
		users.GET("", controllers.ListUsers)
		users.GET("/:id", controllers.ReadUser)
		users.POST("", controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	calendar := r.Group("/calendar")
	calendar.Use(auth)
	{
		calendar.GET("", controllers.ListEvents)
		calendar.POST("", staffOnly, controllers.CreateEvent)
		calendar.PUT("/:id", staffOnly, controllers.UpdateEvent)
		calendar.DELETE("/:id", staffOnly, controllers.DeleteEvent)
	}

	settings := r.Group("/settings")
	settings.Use(auth)
	{
		settings.GET("", controllers.GetSettings)
		settings.PUT("", adminOnly, controllers.UpdateSettings)
	}
}
