package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/config"
	orderControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/order"
	paymentControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/payment"
	productControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/product"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gw paymentControllers.Gateway, hub *orderControllers.Hub) {
	product := r.Group("/product")
	{
		product.GET("/get-product", productControllers.ListProductsHandler(db))
		product.GET("/get-product/:slug", productControllers.GetProductHandler(db))
		product.POST("/product-filters", productControllers.FilterProductsHandler(db))
		product.GET("/product-count", productControllers.ProductCountHandler(db))
		product.GET("/product-list/:page", productControllers.ProductListHandler(db))
		product.GET("/search/:keyword", productControllers.SearchProductsHandler(db))
		product.GET("/related-product/:pid/:cid", productControllers.RelatedProductsHandler(db))
		product.GET("/product-category/:slug", productControllers.ProductsByCategoryHandler(db))

		signedIn := product.Group("", middleware.RequireSignIn(cfg.JWTSecret))
		{
			signedIn.GET("/braintree/token", paymentControllers.TokenHandler(gw))
			signedIn.POST("/braintree/payment", paymentControllers.PaymentHandler(db, gw, hub))
		}

		admin := product.Group("", middleware.RequireSignIn(cfg.JWTSecret), middleware.IsAdmin)
		{
			admin.POST("/create-product", productControllers.CreateProductHandler(db))
			admin.PUT("/update-product/:pid", productControllers.UpdateProductHandler(db))
			admin.DELETE("/delete-product/:pid", productControllers.DeleteProductHandler(db))
			admin.GET("/export", productControllers.ExportProductsToExcel(db))
		}
	}
}
