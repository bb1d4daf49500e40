package cartControllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
	ErrAlreadyInCart   = errors.New("product is already in the cart")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrMinimumQuantity = errors.New("product quantity cannot be less than 1")
)

// activeCart loads the user's active cart with items and product details.
func activeCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Preload("Items.Product.Category").
		Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem puts a product into the user's active cart, creating the cart when
// the user has none, and reserves the requested quantity from stock. Re-adding
// a product that is already a line item is rejected; callers adjust quantity
// through IncreaseQuantity instead. The cart write and the stock write commit
// or roll back together.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var cart models.Cart
		err := tx.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID, Status: models.CartStatusActive}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyInCart
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		return DecrementStock(tx, productID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return activeCart(db, userID)
}

// GetCart returns the user's active cart with product details joined in.
func GetCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	return activeCart(db, userID)
}

// RemoveItem deletes a line item and returns its full quantity to stock.
func RemoveItem(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		return IncrementStock(tx, productID, item.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return activeCart(db, userID)
}

// IncreaseQuantity bumps a line item by one and takes one unit from stock,
// atomically as a unit.
func IncreaseQuantity(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if product.Quantity == 0 {
			return ErrOutOfStock
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		item.Quantity++
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return DecrementStock(tx, productID, 1)
	})
	if err != nil {
		return nil, err
	}

	return activeCart(db, userID)
}

// DecreaseQuantity drops a line item by one and returns one unit to stock. A
// line item never goes below quantity 1; use RemoveItem to take it out.
func DecreaseQuantity(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if item.Quantity <= 1 {
			return ErrMinimumQuantity
		}

		item.Quantity--
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return IncrementStock(tx, productID, 1)
	})
	if err != nil {
		return nil, err
	}

	return activeCart(db, userID)
}

// ClearCart empties the cart and returns every cleared line item's quantity to
// stock. The cart row itself survives.
func ClearCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").
			Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}

		for _, item := range cart.Items {
			if err := IncrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return activeCart(db, userID)
}
