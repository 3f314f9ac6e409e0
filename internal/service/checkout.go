package service

import (
	"context"
	"log/slog"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/internal/event"
	"github.com/pauloargenal/e-commerce-deployed/internal/repository"
	"github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

// ApplyPromoInput holds the parameters for applying a promo code.
type ApplyPromoInput struct {
	Code string `json:"code" validate:"required"`
}

// CheckoutView is the checkout state together with the cart totals it prices.
type CheckoutView struct {
	Checkout *domain.Checkout `json:"checkout"`
	Totals   domain.Totals    `json:"totals"`
}

// CheckoutService implements the business logic for the checkout flow.
type CheckoutService struct {
	repo     repository.SessionRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(repo repository.SessionRepository, producer *event.Producer, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// GetCheckout returns the session's checkout state and current totals.
func (s *CheckoutService) GetCheckout(ctx context.Context, sessionID string) (*CheckoutView, error) {
	sess, err := s.repo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &CheckoutView{
		Checkout: sess.Checkout,
		Totals:   sess.Checkout.ComputeTotals(sess.Cart),
	}, nil
}

// ApplyPromo applies a promo code. An unknown code is not an error: the
// checkout records a validation message and drops any previously applied
// promo, and the caller reads the outcome from the returned state.
func (s *CheckoutService) ApplyPromo(ctx context.Context, sessionID string, input ApplyPromoInput) (*CheckoutView, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Checkout.ApplyPromo(input.Code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutView{
		Checkout: sess.Checkout,
		Totals:   sess.Checkout.ComputeTotals(sess.Cart),
	}, nil
}

// RemovePromo clears the applied promo and any validation error.
func (s *CheckoutService) RemovePromo(ctx context.Context, sessionID string) (*CheckoutView, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Checkout.RemovePromo()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutView{
		Checkout: sess.Checkout,
		Totals:   sess.Checkout.ComputeTotals(sess.Cart),
	}, nil
}

// Complete finalizes the checkout and returns the receipt. The cart must be
// non-empty and the checkout must still be in the reviewing phase.
func (s *CheckoutService) Complete(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	var receipt *domain.Receipt
	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if sess.Checkout.Phase == domain.PhaseCompleted {
			return errors.Conflict("checkout already completed")
		}
		if len(sess.Cart.Items) == 0 {
			return errors.InvalidInput("cannot complete checkout with an empty cart")
		}

		r, err := sess.Checkout.Complete(sess.Cart)
		if err != nil {
			return errors.InvalidInput(err.Error())
		}
		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.producer.PublishCheckoutCompleted(ctx, sessionID, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("session_id", sessionID),
			slog.String("receipt_id", receipt.ID),
			slog.String("error", err.Error()),
		)
	}
	return receipt, nil
}

// Acknowledge dismisses a completed checkout: the cart is emptied, the
// receipt is discarded, and the checkout dialog closes.
func (s *CheckoutService) Acknowledge(ctx context.Context, sessionID string) (*CheckoutView, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if sess.Checkout.Phase != domain.PhaseCompleted {
			return errors.InvalidInput("no completed checkout to acknowledge")
		}
		sess.Cart.Clear()
		sess.Cart.SetCheckoutOpen(false)
		sess.Checkout.Acknowledge()
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
	return &CheckoutView{
		Checkout: sess.Checkout,
		Totals:   sess.Checkout.ComputeTotals(sess.Cart),
	}, nil
}
