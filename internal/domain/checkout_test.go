package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPromo(t *testing.T) {
	tests := []struct {
		code   string
		want   float64
		wantOK bool
	}{
		{"SAVE10", 10, true},
		{"save10", 10, true},
		{"  Save20  ", 20, true},
		{"SAVE50", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			promo, ok := LookupPromo(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, promo.Discount)
			}
		})
	}
}

func TestCheckout_ApplyPromo_Valid(t *testing.T) {
	co := NewCheckout()

	co.ApplyPromo("save10")

	require.NotNil(t, co.AppliedPromo)
	assert.Equal(t, "SAVE10", co.AppliedPromo.Code)
	assert.Empty(t, co.PromoError)
}

func TestCheckout_ApplyPromo_InvalidClearsApplied(t *testing.T) {
	co := NewCheckout()
	co.ApplyPromo("SAVE10")
	require.NotNil(t, co.AppliedPromo)

	co.ApplyPromo("BOGUS")

	assert.Nil(t, co.AppliedPromo)
	assert.NotEmpty(t, co.PromoError)
}

func TestCheckout_RemovePromo(t *testing.T) {
	co := NewCheckout()
	co.ApplyPromo("SAVE20")
	co.ApplyPromo("BOGUS")

	co.RemovePromo()

	assert.Nil(t, co.AppliedPromo)
	assert.Empty(t, co.PromoError)
}

func TestCheckout_ComputeTotals(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 200, Stock: 5})

	co := NewCheckout()
	co.ApplyPromo("SAVE10")

	totals := co.ComputeTotals(cart)

	assert.InDelta(t, 200.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 20.0, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 180.0, totals.Total, 1e-9)
}

func TestCheckout_ComputeTotals_NoPromo(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 100, DiscountPercentage: 20, Stock: 5})

	totals := NewCheckout().ComputeTotals(cart)

	assert.InDelta(t, 80.0, totals.Subtotal, 1e-9)
	assert.Zero(t, totals.DiscountAmount)
	assert.InDelta(t, 80.0, totals.Total, 1e-9)
}

func TestCheckout_Complete(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 100, Stock: 5})
	cart.AddProduct(Product{ID: 2, Price: 90, Stock: 5})

	co := NewCheckout()
	receipt, err := co.Complete(cart)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.ID, "REC-"))
	assert.Len(t, receipt.Items, 2)
	assert.InDelta(t, 190.0, receipt.Total, 1e-9)
	assert.Empty(t, receipt.PromoCode)
	assert.Equal(t, PhaseCompleted, co.Phase)
	assert.False(t, receipt.Timestamp.IsZero())
}

func TestCheckout_Complete_WithPromo(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 200, Stock: 5})

	co := NewCheckout()
	co.ApplyPromo("SAVE20")

	receipt, err := co.Complete(cart)
	require.NoError(t, err)

	assert.Equal(t, "SAVE20", receipt.PromoCode)
	assert.InDelta(t, 40.0, receipt.Discount, 1e-9)
	assert.InDelta(t, 160.0, receipt.Total, 1e-9)
}

func TestCheckout_Complete_EmptyCart(t *testing.T) {
	co := NewCheckout()

	_, err := co.Complete(NewCart())
	assert.Error(t, err)
}

func TestCheckout_Complete_Twice(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 10, Stock: 5})

	co := NewCheckout()
	_, err := co.Complete(cart)
	require.NoError(t, err)

	_, err = co.Complete(cart)
	assert.Error(t, err)
}

func TestCheckout_ReceiptSnapshotImmutable(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 100, Stock: 5})

	co := NewCheckout()
	receipt, err := co.Complete(cart)
	require.NoError(t, err)

	cart.Clear()
	cart.AddProduct(Product{ID: 2, Price: 7, Stock: 3})

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, int64(1), receipt.Items[0].Product.ID)
}

func TestCheckout_Acknowledge(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(Product{ID: 1, Price: 100, Stock: 5})

	co := NewCheckout()
	co.ApplyPromo("SAVE10")
	_, err := co.Complete(cart)
	require.NoError(t, err)

	co.Acknowledge()

	assert.Equal(t, PhaseReviewing, co.Phase)
	assert.Nil(t, co.Receipt)
	assert.Nil(t, co.AppliedPromo)
	assert.Empty(t, co.PromoError)
}

func TestNewReceiptID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewReceiptID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate receipt id %s", id)
		seen[id] = struct{}{}
	}
}
