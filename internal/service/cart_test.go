package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/internal/repository/memory"
	apperrors "github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

const testSession = "sess-1"

func newCartService(source *mockCatalog) *CartService {
	return NewCartService(memory.New(), source, nil, testLogger())
}

func TestCartService_AddItem(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Title: "Desk Lamp", Price: 34.5, Stock: 3}, nil)

	svc := newCartService(source)

	res, err := svc.AddItem(context.Background(), testSession, AddItemInput{ProductID: 1})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	require.Len(t, res.Cart.Items, 1)
	assert.Equal(t, 1, res.Cart.Items[0].Quantity)
	source.AssertExpectations(t)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(404)).
		Return(domain.Product{}, apperrors.NotFound("product", "404"))

	svc := newCartService(source)

	_, err := svc.AddItem(context.Background(), testSession, AddItemInput{ProductID: 404})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(2)).
		Return(domain.Product{ID: 2, Title: "Sold Out", Price: 10, Stock: 0}, nil)

	svc := newCartService(source)

	res, err := svc.AddItem(context.Background(), testSession, AddItemInput{ProductID: 2})
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Empty(t, res.Cart.Items)
}

func TestCartService_AddItem_StopsAtStock(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Price: 10, Stock: 2}, nil)

	svc := newCartService(source)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, testSession, AddItemInput{ProductID: 1})
		require.NoError(t, err)
	}

	cart, err := svc.GetCart(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity_ClampsToStock(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Price: 10, Stock: 5}, nil)

	svc := newCartService(source)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testSession, AddItemInput{ProductID: 1})
	require.NoError(t, err)

	res, err := svc.UpdateQuantity(ctx, testSession, 1, 50)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 5, res.Cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Price: 10, Stock: 5}, nil)

	svc := newCartService(source)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testSession, AddItemInput{ProductID: 1})
	require.NoError(t, err)

	res, err := svc.UpdateQuantity(ctx, testSession, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Cart.Items)
}

func TestCartService_UpdateQuantity_UnknownProduct(t *testing.T) {
	svc := newCartService(new(mockCatalog))

	res, err := svc.UpdateQuantity(context.Background(), testSession, 42, 3)
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Empty(t, res.Cart.Items)
}

func TestCartService_RemoveItem(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Price: 10, Stock: 5}, nil)

	svc := newCartService(source)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testSession, AddItemInput{ProductID: 1})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, testSession, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_ClearCart_KeepsPanelFlags(t *testing.T) {
	source := new(mockCatalog)
	source.On("GetProduct", mock.Anything, int64(1)).
		Return(domain.Product{ID: 1, Price: 10, Stock: 5}, nil)

	svc := newCartService(source)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testSession, AddItemInput{ProductID: 1})
	require.NoError(t, err)
	_, err = svc.SetCartOpen(ctx, testSession, true)
	require.NoError(t, err)

	cart, err := svc.ClearCart(ctx, testSession)
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.True(t, cart.IsOpen)
}

func TestCartService_ToggleCart(t *testing.T) {
	svc := newCartService(new(mockCatalog))
	ctx := context.Background()

	cart, err := svc.ToggleCart(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, cart.IsOpen)

	cart, err = svc.ToggleCart(ctx, testSession)
	require.NoError(t, err)
	assert.False(t, cart.IsOpen)
}

func TestCartService_OpenCheckout(t *testing.T) {
	svc := newCartService(new(mockCatalog))
	ctx := context.Background()

	_, err := svc.SetCartOpen(ctx, testSession, true)
	require.NoError(t, err)

	cart, err := svc.OpenCheckout(ctx, testSession)
	require.NoError(t, err)

	assert.False(t, cart.IsOpen)
	assert.True(t, cart.IsCheckoutOpen)
}

func TestCartService_GetCart_CreatesEmpty(t *testing.T) {
	svc := newCartService(new(mockCatalog))

	cart, err := svc.GetCart(context.Background(), "fresh-session")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.False(t, cart.IsOpen)
}
