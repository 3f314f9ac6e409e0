package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int64, stock int) Product {
	return Product{
		ID:       id,
		Title:    "Test Product",
		Price:    100,
		Stock:    stock,
		Category: "beauty",
	}
}

func TestCart_AddProduct_New(t *testing.T) {
	cart := NewCart()

	changed := cart.AddProduct(testProduct(1, 5))

	assert.True(t, changed)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCart_AddProduct_Increments(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 5)

	cart.AddProduct(p)
	changed := cart.AddProduct(p)

	assert.True(t, changed)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddProduct_ZeroStock(t *testing.T) {
	cart := NewCart()

	changed := cart.AddProduct(testProduct(1, 0))

	assert.False(t, changed)
	assert.Empty(t, cart.Items)
}

func TestCart_AddProduct_CappedAtStock(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 2)

	assert.True(t, cart.AddProduct(p))
	assert.True(t, cart.AddProduct(p))
	assert.False(t, cart.AddProduct(p))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_RemoveProduct(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 5))
	cart.AddProduct(testProduct(2, 5))

	cart.RemoveProduct(1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Product.ID)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 10))

	cart.SetQuantity(1, 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCart_SetQuantity_ZeroRemoves(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 10))

	cart.SetQuantity(1, 0)
	assert.Empty(t, cart.Items)
}

func TestCart_SetQuantity_NegativeRemoves(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 10))

	cart.SetQuantity(1, -3)
	assert.Empty(t, cart.Items)
}

func TestCart_SetQuantity_UnknownProduct(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 10))

	cart.SetQuantity(99, 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCart_Clear_LeavesFlags(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 5))
	cart.SetOpen(true)
	cart.SetCheckoutOpen(true)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.True(t, cart.IsOpen)
	assert.True(t, cart.IsCheckoutOpen)
}

func TestCart_ToggleOpen(t *testing.T) {
	cart := NewCart()

	cart.ToggleOpen()
	assert.True(t, cart.IsOpen)

	cart.ToggleOpen()
	assert.False(t, cart.IsOpen)
}

func TestCart_OpenCheckout(t *testing.T) {
	cart := NewCart()
	cart.SetOpen(true)

	cart.OpenCheckout()

	assert.False(t, cart.IsOpen)
	assert.True(t, cart.IsCheckoutOpen)
}

func TestCart_ItemCount(t *testing.T) {
	cart := NewCart()
	p1 := testProduct(1, 10)
	p2 := testProduct(2, 10)

	cart.AddProduct(p1)
	cart.AddProduct(p1)
	cart.AddProduct(p2)

	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_Subtotal_UsesDiscountedPrice(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 100, DiscountPercentage: 20, Stock: 5})
	cart.SetQuantity(1, 2)

	assert.InDelta(t, 160.0, cart.Subtotal(), 1e-9)
}

func TestCart_Clone_Independent(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(testProduct(1, 5))

	clone := cart.Clone()
	clone.AddProduct(testProduct(2, 5))
	clone.Items[0].Quantity = 99

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}
