package cartControllers

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

// DecrementStock atomically reduces a product's stock, failing with
// ErrOutOfStock when the remaining quantity is insufficient. The guard lives in
// the WHERE clause so stock can never be driven below zero, even under
// concurrent requests.
func DecrementStock(tx *gorm.DB, productID uint, amount int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", productID, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return ErrOutOfStock
	}
	return nil
}

// IncrementStock atomically restores stock. There is no upper bound.
func IncrementStock(tx *gorm.DB, productID uint, amount int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to increment stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
