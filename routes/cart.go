package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	cartControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/cart"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cart := r.Group("/cart", middleware.RequireSignIn(cfg.JWTSecret))
	{
		cart.POST("/add-cartitem", cartControllers.AddItemHandler(db))
		cart.GET("/get-cart/:userId", cartControllers.GetCartHandler(db))
		cart.DELETE("/delete-cartitem/:userId/:productId", cartControllers.RemoveItemHandler(db))
		cart.POST("/increase-quantity", cartControllers.IncreaseQuantityHandler(db))
		cart.POST("/decrease-quantity", cartControllers.DecreaseQuantityHandler(db))
		cart.DELETE("/remove-allitems/:userId", cartControllers.ClearCartHandler(db))
	}
}
