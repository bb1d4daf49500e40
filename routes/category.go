package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	categoryControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/category"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	category := r.Group("/category")
	{
		category.GET("/get-category", categoryControllers.ListCategoriesHandler(db))
		category.GET("/get-category/:slug", categoryControllers.GetCategoryHandler(db))

		admin := category.Group("", middleware.RequireSignIn(cfg.JWTSecret), middleware.IsAdmin)
		{
			admin.POST("/create-category", categoryControllers.CreateCategoryHandler(db))
			admin.PUT("/update-category/:id", categoryControllers.UpdateCategoryHandler(db))
			admin.DELETE("/delete-category/:id", categoryControllers.DeleteCategoryHandler(db))
		}
	}
}
