package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	authControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/auth"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authControllers.RegisterHandler(db))
		auth.POST("/login", authControllers.LoginHandler(db, cfg.JWTSecret))
		auth.POST("/forgot-password", authControllers.ForgotPasswordHandler(db))

		signedIn := auth.Group("", middleware.RequireSignIn(cfg.JWTSecret))
		{
			signedIn.GET("/user-auth", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": true, "ok": true})
			})
			signedIn.GET("/admin-auth", middleware.IsAdmin, func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": true, "ok": true})
			})
			signedIn.PUT("/profile", authControllers.UpdateProfileHandler(db))
			signedIn.GET("/all-users", middleware.IsAdmin, authControllers.GetAllUsersHandler(db))
		}
	}
}
