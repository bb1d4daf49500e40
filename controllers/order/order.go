package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/middleware"
	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

var (
	ErrNoOrdersFound = errors.New("no orders found")
	ErrOrderNotFound = errors.New("order not found")
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusNotProcessed):
		return models.OrderStatusNotProcessed, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ListOrders returns a buyer's orders with snapshot items and buyer name.
func ListOrders(db *gorm.DB, buyerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.
		Where("user_id = ?", buyerID).
		Preload("User").
		Preload("Items").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersFound
	}
	return orders, nil
}

// ListAllOrders returns every order across buyers, newest first.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersFound
	}
	return orders, nil
}

// SetOrderStatus overwrites an order's status. The value must be a member of
// the status enum; there is no legal-transition check.
func SetOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.Preload("User").Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	order.Status = newStatus
	return &order, nil
}

// GET /order
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		orders, err := ListOrders(db, userID)
		if err != nil {
			if errors.Is(err, ErrNoOrdersFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No orders found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting orders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders received", "orders": orders})
	}
}

// GET /order/all-orders
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListAllOrders(db)
		if err != nil {
			if errors.Is(err, ErrNoOrdersFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No orders found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while getting all orders", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Orders received", "orders": orders})
	}
}

// PUT /order/order-status/:orderId
func UpdateOrderStatusHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required", "error": err.Error()})
			return
		}

		order, err := SetOrderStatus(db, uint(orderID), req.Status)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrOrderNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"success": false, "message": err.Error()})
			return
		}

		hub.Broadcast(Event{Type: "order_status_changed", Order: order})

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully", "order": order})
	}
}
