package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// PromoCode is a named percentage discount applied at checkout.
type PromoCode struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

var promoCodes = []PromoCode{
	{Code: "SAVE10", Discount: 10},
	{Code: "SAVE20", Discount: 20},
}

// LookupPromo finds a promo code by name, case-insensitively.
func LookupPromo(code string) (PromoCode, bool) {
	trimmed := strings.TrimSpace(code)
	for _, promo := range promoCodes {
		if strings.EqualFold(promo.Code, trimmed) {
			return promo, true
		}
	}
	return PromoCode{}, false
}

// CheckoutPhase tracks where a session is in the checkout flow.
type CheckoutPhase string

const (
	PhaseReviewing CheckoutPhase = "reviewing"
	PhaseCompleted CheckoutPhase = "completed"
)

// Checkout holds a session's checkout state: the applied promo code, the last
// promo validation error, and the receipt once the order completes.
type Checkout struct {
	Phase        CheckoutPhase `json:"phase"`
	AppliedPromo *PromoCode    `json:"appliedPromo,omitempty"`
	PromoError   string        `json:"promoError,omitempty"`
	Receipt      *Receipt      `json:"receipt,omitempty"`
}

// NewCheckout returns a checkout in the reviewing phase with no promo applied.
func NewCheckout() *Checkout {
	return &Checkout{Phase: PhaseReviewing}
}

// ApplyPromo validates and applies a promo code. An unknown code records a
// validation message and removes any previously applied promo.
func (co *Checkout) ApplyPromo(code string) {
	if promo, ok := LookupPromo(code); ok {
		co.AppliedPromo = &promo
		co.PromoError = ""
		return
	}
	co.PromoError = "invalid promo code"
	co.AppliedPromo = nil
}

// RemovePromo clears the applied promo and any validation error.
func (co *Checkout) RemovePromo() {
	co.AppliedPromo = nil
	co.PromoError = ""
}

// Totals is the priced summary of a cart under the current promo.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}

// ComputeTotals prices the cart: the subtotal uses each product's discounted
// unit price, and the promo discount applies on top of the subtotal.
func (co *Checkout) ComputeTotals(cart *Cart) Totals {
	subtotal := cart.Subtotal()

	var discountPct float64
	if co.AppliedPromo != nil {
		discountPct = co.AppliedPromo.Discount
	}
	discountAmount := subtotal * discountPct / 100

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

// Receipt is an immutable snapshot of a completed order.
type Receipt struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Discount  float64    `json:"discount"`
	Total     float64    `json:"total"`
	PromoCode string     `json:"promoCode,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

var (
	receiptMu     sync.Mutex
	lastReceiptMS int64
)

// NewReceiptID returns a receipt identifier derived from the current time.
// Consecutive calls within the same millisecond are forced apart so IDs
// stay unique.
func NewReceiptID() string {
	receiptMu.Lock()
	defer receiptMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastReceiptMS {
		ms = lastReceiptMS + 1
	}
	lastReceiptMS = ms

	return fmt.Sprintf("REC-%d", ms)
}

// Complete finalizes the checkout: it snapshots the cart into a receipt and
// moves the checkout to the completed phase. Completing an empty cart or an
// already-completed checkout is rejected.
func (co *Checkout) Complete(cart *Cart) (*Receipt, error) {
	if co.Phase == PhaseCompleted {
		return nil, fmt.Errorf("checkout already completed")
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	totals := co.ComputeTotals(cart)

	items := make([]LineItem, len(cart.Items))
	copy(items, cart.Items)

	receipt := &Receipt{
		ID:        NewReceiptID(),
		Items:     items,
		Subtotal:  totals.Subtotal,
		Discount:  totals.DiscountAmount,
		Total:     totals.Total,
		Timestamp: time.Now().UTC(),
	}
	if co.AppliedPromo != nil {
		receipt.PromoCode = co.AppliedPromo.Code
	}

	co.Receipt = receipt
	co.Phase = PhaseCompleted
	return receipt, nil
}

// Acknowledge resets the checkout after the shopper dismisses the receipt.
func (co *Checkout) Acknowledge() {
	co.Phase = PhaseReviewing
	co.Receipt = nil
	co.AppliedPromo = nil
	co.PromoError = ""
}

// Clone returns a deep copy of the checkout.
func (co *Checkout) Clone() *Checkout {
	clone := &Checkout{
		Phase:      co.Phase,
		PromoError: co.PromoError,
	}
	if co.AppliedPromo != nil {
		promo := *co.AppliedPromo
		clone.AppliedPromo = &promo
	}
	if co.Receipt != nil {
		receipt := *co.Receipt
		receipt.Items = make([]LineItem, len(co.Receipt.Items))
		copy(receipt.Items, co.Receipt.Items)
		clone.Receipt = &receipt
	}
	return clone
}
