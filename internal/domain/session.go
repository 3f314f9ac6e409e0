package domain

import "time"

// BrowseState is the per-session product listing view: the active filters and
// the last catalog snapshot applied to them. Refreshes are sequenced so a slow
// fetch can never overwrite the result of a newer one.
type BrowseState struct {
	Filters    ProductFilters `json:"filters"`
	Products   []Product      `json:"products"`
	Total      int            `json:"total"`
	IssuedSeq  uint64         `json:"-"`
	AppliedSeq uint64         `json:"-"`
}

// NewBrowseState returns a browse state with default filters and no products.
func NewBrowseState() *BrowseState {
	return &BrowseState{
		Filters:  DefaultFilters(),
		Products: []Product{},
	}
}

// IssueSeq hands out the sequence number for a new refresh.
func (b *BrowseState) IssueSeq() uint64 {
	b.IssuedSeq++
	return b.IssuedSeq
}

// Apply installs a refresh result if it is newer than the last applied one.
// Stale results are discarded and Apply reports false.
func (b *BrowseState) Apply(seq uint64, products []Product, total int) bool {
	if seq <= b.AppliedSeq {
		return false
	}
	b.AppliedSeq = seq
	b.Products = products
	b.Total = total
	return true
}

// Clone returns a deep copy of the browse state.
func (b *BrowseState) Clone() *BrowseState {
	products := make([]Product, len(b.Products))
	copy(products, b.Products)
	return &BrowseState{
		Filters:    b.Filters,
		Products:   products,
		Total:      b.Total,
		IssuedSeq:  b.IssuedSeq,
		AppliedSeq: b.AppliedSeq,
	}
}

// Session is all server-side state held for one shopper.
type Session struct {
	ID        string       `json:"id"`
	Cart      *Cart        `json:"cart"`
	Checkout  *Checkout    `json:"checkout"`
	Browse    *BrowseState `json:"browse"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewSession creates a fresh session with empty cart, checkout, and browse state.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Cart:      NewCart(),
		Checkout:  NewCheckout(),
		Browse:    NewBrowseState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	return &Session{
		ID:        s.ID,
		Cart:      s.Cart.Clone(),
		Checkout:  s.Checkout.Clone(),
		Browse:    s.Browse.Clone(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
