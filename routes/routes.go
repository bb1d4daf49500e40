package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	orderControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/order"
	paymentControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/payment"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gw paymentControllers.Gateway, hub *orderControllers.Hub) {
	SetupAuthRoutes(r, db, cfg)

	SetupCategoryRoutes(r, db, cfg)

	SetupProductRoutes(r, db, cfg, gw, hub)

	SetupCartRoutes(r, db, cfg)

	SetupOrderRoutes(r, db, cfg, hub)
}
