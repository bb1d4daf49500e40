package paymentControllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	cartControllers "github.com/aquibk580/Shark-Electronics-Backend/controllers/cart"
	"github.com/aquibk580/Shark-Electronics-Backend/models"
	"github.com/aquibk580/Shark-Electronics-Backend/payment"
)

type fakeGateway struct {
	saleAmount decimal.Decimal
	saleNonce  string
	saleErr    error
	saleCalls  int
}

func (f *fakeGateway) GenerateClientToken(ctx context.Context) (string, error) {
	return "tok_fake", nil
}

func (f *fakeGateway) Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*payment.SaleResult, error) {
	f.saleCalls++
	f.saleAmount = amount
	f.saleNonce = nonce
	if f.saleErr != nil {
		return nil, f.saleErr
	}
	return &payment.SaleResult{
		TransactionID: "txn_fake",
		Status:        "submitted_for_settlement",
		Amount:        amount.StringFixed(2),
		Raw:           `{"transaction":{"id":"txn_fake"}}`,
	}, nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// seedCart builds an active cart for the buyer with the given (price, quantity)
// line items.
func seedCart(t *testing.T, db *gorm.DB, buyerID uint, lines ...[2]float64) {
	t.Helper()
	user := models.User{Name: "Buyer", Email: fmt.Sprintf("buyer%d@test.dev", buyerID), Password: "x"}
	user.ID = buyerID
	require.NoError(t, db.Create(&user).Error)

	for i, line := range lines {
		product := models.Product{
			Name:        fmt.Sprintf("product-%d", i),
			Description: "test",
			Price:       line[0],
			Quantity:    100,
		}
		require.NoError(t, db.Create(&product).Error)
		_, err := cartControllers.AddItem(db, buyerID, product.ID, int(line[1]))
		require.NoError(t, err)
	}
}

func TestChargeCartTotal(t *testing.T) {
	db := setupDB(t)
	seedCart(t, db, 1, [2]float64{10, 2}, [2]float64{5, 3})

	gw := &fakeGateway{}
	order, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	require.NoError(t, err)

	assert.True(t, gw.saleAmount.Equal(decimal.NewFromInt(35)), "charged %s, want 35", gw.saleAmount)
	assert.Equal(t, "nonce-1", gw.saleNonce)
	assert.InDelta(t, 35.0, order.Total, 0.0001)
}

func TestChargeCartCreatesOrderSnapshot(t *testing.T) {
	db := setupDB(t)
	seedCart(t, db, 1, [2]float64{19.99, 1})

	gw := &fakeGateway{}
	order, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "product-0", order.Items[0].Name)
	assert.Equal(t, 19.99, order.Items[0].Price)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, models.OrderStatusNotProcessed, order.Status)
	assert.NotEmpty(t, order.OrderRef)
	assert.NotEmpty(t, order.Payment)
	assert.Equal(t, "Buyer", order.User.Name)

	// editing the product later must not touch the snapshot
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", order.Items[0].ProductID).
		Update("price", 1.0).Error)
	var item models.OrderItem
	require.NoError(t, db.First(&item, order.Items[0].ID).Error)
	assert.Equal(t, 19.99, item.Price)
}

func TestChargeCartClosesCart(t *testing.T) {
	db := setupDB(t)
	seedCart(t, db, 1, [2]float64{10, 1})

	gw := &fakeGateway{}
	_, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	require.NoError(t, err)

	var cart models.Cart
	require.NoError(t, db.First(&cart).Error)
	assert.Equal(t, models.CartStatusOrdered, cart.Status)

	// a repeat charge finds no active cart to bill
	_, err = ChargeCart(context.Background(), db, gw, 1, "nonce-2")
	assert.ErrorIs(t, err, cartControllers.ErrCartNotFound)
	assert.Equal(t, 1, gw.saleCalls)
}

func TestChargeCartGatewayFailure(t *testing.T) {
	db := setupDB(t)
	seedCart(t, db, 1, [2]float64{10, 1})

	gw := &fakeGateway{saleErr: errors.New("processor declined")}
	_, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	require.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "processor declined")

	// no order was persisted and the cart is still active
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	var cart models.Cart
	require.NoError(t, db.First(&cart).Error)
	assert.Equal(t, models.CartStatusActive, cart.Status)
}

func TestChargeCartNoCart(t *testing.T) {
	db := setupDB(t)

	gw := &fakeGateway{}
	_, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	assert.ErrorIs(t, err, cartControllers.ErrCartNotFound)
	assert.Zero(t, gw.saleCalls)
}

func TestChargeCartEmptyCart(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, Status: models.CartStatusActive}).Error)

	gw := &fakeGateway{}
	_, err := ChargeCart(context.Background(), db, gw, 1, "nonce-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, gw.saleCalls)
}
