// Package service implements the storefront business logic on top of the
// session store and the catalog.
package service

import (
	"context"
	"log/slog"

	"github.com/pauloargenal/e-commerce-deployed/internal/catalog"
	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/internal/event"
	"github.com/pauloargenal/e-commerce-deployed/internal/repository"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// UpdateQuantityInput holds the parameters for setting a line item quantity.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartResult is a cart mutation outcome. Changed is false when the operation
// was a silent no-op (product out of stock, or quantity already at the cap).
type CartResult struct {
	Cart    *domain.Cart `json:"cart"`
	Changed bool         `json:"changed"`
}

// CartService implements the business logic for cart operations.
type CartService struct {
	repo     repository.SessionRepository
	catalog  catalog.Source
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.SessionRepository, source catalog.Source, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  source,
		producer: producer,
		logger:   logger,
	}
}

// GetCart returns the session's cart, creating an empty one on first access.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	sess, err := s.repo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// AddItem adds one unit of the product to the cart. The product is fetched
// from the catalog so the cart snapshots current price and stock. Adding a
// product with no remaining stock leaves the cart unchanged.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartResult, error) {
	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	var changed bool
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		changed = sess.Cart.AddProduct(product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishCartUpdated(ctx, sessionID, sess.Cart)
	}
	return &CartResult{Cart: sess.Cart, Changed: changed}, nil
}

// UpdateQuantity sets a line item's quantity. Zero or negative removes the
// item; values above the snapshotted stock are clamped down to it.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartResult, error) {
	var changed bool
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		idx := sess.Cart.FindItemIndex(productID)
		if idx < 0 {
			return nil
		}

		q := quantity
		if stock := sess.Cart.Items[idx].Product.Stock; q > stock {
			q = stock
		}
		sess.Cart.SetQuantity(productID, q)
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishCartUpdated(ctx, sessionID, sess.Cart)
	}
	return &CartResult{Cart: sess.Cart, Changed: changed}, nil
}

// RemoveItem removes a product from the cart. Removing an absent product is
// a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	var changed bool
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		changed = sess.Cart.FindItemIndex(productID) >= 0
		sess.Cart.RemoveProduct(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishCartUpdated(ctx, sessionID, sess.Cart)
	}
	return sess.Cart, nil
}

// ClearCart empties the cart. Panel open flags are left as they are.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}
	return sess.Cart, nil
}

// ToggleCart flips the cart drawer open state.
func (s *CartService) ToggleCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Cart.ToggleOpen()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// SetCartOpen sets the cart drawer open state.
func (s *CartService) SetCartOpen(ctx context.Context, sessionID string, open bool) (*domain.Cart, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Cart.SetOpen(open)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// SetCheckoutOpen sets the checkout dialog open state.
func (s *CartService) SetCheckoutOpen(ctx context.Context, sessionID string, open bool) (*domain.Cart, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Cart.SetCheckoutOpen(open)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

// OpenCheckout closes the cart drawer and opens the checkout dialog.
func (s *CartService) OpenCheckout(ctx context.Context, sessionID string) (*domain.Cart, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Cart.OpenCheckout()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

func (s *CartService) publishCartUpdated(ctx context.Context, sessionID string, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, sessionID, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}
}
