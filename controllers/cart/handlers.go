package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// statusFor maps a cart error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyInCart),
		errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrMinimumQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"success": false, "message": message, "error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}

// POST /cart/add-cartitem
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		cart, err := AddItem(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			fail(c, err, "Something went wrong while adding item to the cart")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product added to cart successfully",
			"cart":    cart,
		})
	}
}

// GET /cart/get-cart/:userId
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		cart, err := GetCart(db, uint(userID))
		if err != nil {
			fail(c, err, "Something went wrong")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Cart items received",
			"cart":    cart,
		})
	}
}

// DELETE /cart/delete-cartitem/:userId/:productId
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		cart, err := RemoveItem(db, uint(userID), uint(productID))
		if err != nil {
			fail(c, err, "Error while removing item")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Item removed from the cart successfully",
			"cart":    cart,
		})
	}
}

// POST /cart/increase-quantity
func IncreaseQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		cart, err := IncreaseQuantity(db, userID, input.ProductID)
		if err != nil {
			fail(c, err, "Internal server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product quantity increased",
			"cart":    cart,
		})
	}
}

// POST /cart/decrease-quantity
func DecreaseQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input", "error": err.Error()})
			return
		}

		cart, err := DecreaseQuantity(db, userID, input.ProductID)
		if err != nil {
			fail(c, err, "Internal server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product quantity decreased",
			"cart":    cart,
		})
	}
}

// DELETE /cart/remove-allitems/:userId
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		cart, err := ClearCart(db, uint(userID))
		if err != nil {
			fail(c, err, "Error while removing all items from cart")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "All cart items removed successfully",
			"cart":    cart,
		})
	}
}
