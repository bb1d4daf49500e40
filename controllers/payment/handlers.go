package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/cart"
	orderControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/order"
	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

type PaymentInput struct {
	Nonce string `json:"nonce" binding:"required"`
}

// GET /product/braintree/token
func TokenHandler(gw Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := gw.GenerateClientToken(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while generating payment token", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "clientToken": token})
	}
}

// POST /product/braintree/payment
func PaymentHandler(db *gorm.DB, gw Gateway, hub *orderControllers.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment nonce is required", "error": err.Error()})
			return
		}

		order, err := ChargeCart(c.Request.Context(), db, gw, userID, input.Nonce)
		if err != nil {
			switch {
			case errors.Is(err, cartControllers.ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			case errors.Is(err, ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while processing payment", "error": err.Error()})
			}
			return
		}

		hub.Broadcast(orderControllers.Event{Type: "order_created", Order: order})

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment successful", "order": order})
	}
}
