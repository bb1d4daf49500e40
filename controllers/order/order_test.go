package orderControllers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, buyerID uint, ref string, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		OrderRef:  ref,
		UserID:    buyerID,
		Total:     42,
		Status:    models.OrderStatusNotProcessed,
		CreatedAt: createdAt,
		Items: []models.OrderItem{
			{ProductID: 1, Name: "thing", Price: 42, Quantity: 1},
		},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestListOrdersEmpty(t *testing.T) {
	db := setupDB(t)
	_, err := ListOrders(db, 1)
	assert.ErrorIs(t, err, ErrNoOrdersFound)
}

func TestListOrdersScopedToBuyer(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.User{Name: "Ana", Email: "ana@test.dev", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Ben", Email: "ben@test.dev", Password: "x"}).Error)
	seedOrder(t, db, 1, "ref-1", time.Now())
	seedOrder(t, db, 2, "ref-2", time.Now())

	orders, err := ListOrders(db, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ref-1", orders[0].OrderRef)
	assert.Equal(t, "Ana", orders[0].User.Name)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "thing", orders[0].Items[0].Name)
}

func TestListAllOrdersNewestFirst(t *testing.T) {
	db := setupDB(t)
	now := time.Now()
	seedOrder(t, db, 1, "old", now.Add(-time.Hour))
	seedOrder(t, db, 1, "new", now)

	orders, err := ListAllOrders(db)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "new", orders[0].OrderRef)
	assert.Equal(t, "old", orders[1].OrderRef)
}

func TestSetOrderStatus(t *testing.T) {
	db := setupDB(t)
	order := seedOrder(t, db, 1, "ref-1", time.Now())

	updated, err := SetOrderStatus(db, order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
}

func TestSetOrderStatusInvalid(t *testing.T) {
	db := setupDB(t)
	order := seedOrder(t, db, 1, "ref-1", time.Now())

	_, err := SetOrderStatus(db, order.ID, "teleported")
	assert.Error(t, err)
}

func TestSetOrderStatusNotFound(t *testing.T) {
	db := setupDB(t)
	_, err := SetOrderStatus(db, 999, "shipped")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
