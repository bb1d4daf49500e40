package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	orderControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/order"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *orderControllers.Hub) {
	order := r.Group("/order", middleware.RequireSignIn(cfg.JWTSecret))
	{
		order.GET("", orderControllers.ListOrdersHandler(db))

		admin := order.Group("", middleware.IsAdmin)
		{
			admin.GET("/all-orders", orderControllers.ListAllOrdersHandler(db))
			admin.PUT("/order-status/:orderId", orderControllers.UpdateOrderStatusHandler(db, hub))
			admin.GET("/ws", hub.Handler)
		}
	}
}
