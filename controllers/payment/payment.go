package paymentControllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	cartControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/cart"
	"github.com/aquibk580/Shark-Electronics-Backend/models"
	"github.com/aquibk580/Shark-Electronics-Backend/payment"
)

var (
	ErrCartEmpty = errors.New("cart is empty")
	ErrGateway   = errors.New("payment gateway error")
)

// Gateway is what the handlers need from the payment provider. The concrete
// client lives in the payment package; tests substitute a fake.
type Gateway interface {
	GenerateClientToken(ctx context.Context) (string, error)
	Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*payment.SaleResult, error)
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CartTotal sums price x quantity over the cart's line items. Decimal math so
// 19.99 * 3 comes out exact.
func CartTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		price := decimal.NewFromFloat(item.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ChargeCart settles the buyer's active cart: it computes the total, submits an
// authorize-and-capture to the gateway, and on success writes the order
// snapshot and closes the cart in one transaction. On gateway failure nothing
// is persisted and the gateway's error detail is surfaced. Stock is not touched
// here; cart operations already reserved it.
func ChargeCart(ctx context.Context, db *gorm.DB, gw Gateway, buyerID uint, nonce string) (*models.Order, error) {
	cart, err := cartControllers.GetCart(db, buyerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	total := CartTotal(cart)

	result, err := gw.Sale(ctx, total, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	order := models.Order{
		OrderRef: generateOrderRef(),
		UserID:   buyerID,
		Total:    total.InexactFloat64(),
		Payment:  result.Raw,
		Status:   models.OrderStatusNotProcessed,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// Close the cart so a repeat charge cannot re-bill the same items. The
		// next add-to-cart opens a fresh active cart.
		return tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("status", models.CartStatusOrdered).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("User").Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
