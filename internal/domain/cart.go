package domain

// LineItem is a product in the cart together with its quantity. The product
// is snapshotted at add time so later catalog changes don't mutate the cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds a session's shopping cart and the open/closed state of the cart
// drawer and checkout dialog.
type Cart struct {
	Items          []LineItem `json:"items"`
	IsOpen         bool       `json:"isOpen"`
	IsCheckoutOpen bool       `json:"isCheckoutOpen"`
}

// NewCart returns an empty, closed cart.
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// FindItemIndex returns the index of the line item for the given product,
// or -1 if the product is not in the cart.
func (c *Cart) FindItemIndex(productID int64) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddProduct adds one unit of the product to the cart. If the product is
// already present its quantity grows by one, capped at the product's stock.
// A product with zero stock is never added. Returns true if the cart changed.
func (c *Cart) AddProduct(p Product) bool {
	if idx := c.FindItemIndex(p.ID); idx >= 0 {
		if c.Items[idx].Quantity < c.Items[idx].Product.Stock {
			c.Items[idx].Quantity++
			return true
		}
		return false
	}

	if p.Stock > 0 {
		c.Items = append(c.Items, LineItem{Product: p, Quantity: 1})
		return true
	}
	return false
}

// RemoveProduct removes the line item for the given product, if present.
func (c *Cart) RemoveProduct(productID int64) {
	if idx := c.FindItemIndex(productID); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
}

// SetQuantity sets the quantity of an existing line item. A quantity of zero
// or less removes the item. Products not in the cart are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	idx := c.FindItemIndex(productID)
	if idx < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		return
	}
	c.Items[idx].Quantity = quantity
}

// Clear empties the cart. The drawer and checkout open flags are untouched.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// ToggleOpen flips the cart drawer open state.
func (c *Cart) ToggleOpen() {
	c.IsOpen = !c.IsOpen
}

// SetOpen sets the cart drawer open state.
func (c *Cart) SetOpen(open bool) {
	c.IsOpen = open
}

// SetCheckoutOpen sets the checkout dialog open state.
func (c *Cart) SetCheckoutOpen(open bool) {
	c.IsCheckoutOpen = open
}

// OpenCheckout closes the cart drawer and opens the checkout dialog in one step.
func (c *Cart) OpenCheckout() {
	c.IsOpen = false
	c.IsCheckoutOpen = true
}

// ItemCount returns the total number of units across all line items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums the discounted unit price times quantity over all line items.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += DiscountedPrice(item.Product) * float64(item.Quantity)
	}
	return sum
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{
		Items:          items,
		IsOpen:         c.IsOpen,
		IsCheckoutOpen: c.IsCheckoutOpen,
	}
}
