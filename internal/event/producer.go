// Package event publishes storefront domain events to Kafka.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	pkgkafka "github.com/pauloargenal/e-commerce-deployed/pkg/kafka"
	"github.com/pauloargenal/e-commerce-deployed/pkg/logger"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated       = "storefront.cart.updated"
	TopicCartCleared       = "storefront.cart.cleared"
	TopicCheckoutCompleted = "storefront.checkout.completed"
)

const (
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string         `json:"session_id"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  float64        `json:"subtotal"`
}

// CartItemData is the item payload within cart and checkout events.
type CartItemData struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	SessionID string         `json:"session_id"`
	ReceiptID string         `json:"receipt_id"`
	Items     []CartItemData `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	Discount  float64        `json:"discount"`
	Total     float64        `json:"total"`
	PromoCode string         `json:"promo_code,omitempty"`
}

// Producer publishes storefront domain events. A nil *Producer is a valid
// no-op publisher, used when no Kafka brokers are configured.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if p == nil {
		return nil
	}

	data := CartUpdatedData{
		SessionID: sessionID,
		Items:     itemData(cart.Items),
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}

	return p.publish(ctx, TopicCartUpdated, sessionID, AggregateTypeCart, data)
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	if p == nil {
		return nil
	}

	return p.publish(ctx, TopicCartCleared, sessionID, AggregateTypeCart, CartClearedData{SessionID: sessionID})
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, sessionID string, receipt *domain.Receipt) error {
	if p == nil {
		return nil
	}

	data := CheckoutCompletedData{
		SessionID: sessionID,
		ReceiptID: receipt.ID,
		Items:     itemData(receipt.Items),
		Subtotal:  receipt.Subtotal,
		Discount:  receipt.Discount,
		Total:     receipt.Total,
		PromoCode: receipt.PromoCode,
	}

	return p.publish(ctx, TopicCheckoutCompleted, sessionID, AggregateTypeCheckout, data)
}

func (p *Producer) publish(ctx context.Context, topic, sessionID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, sessionID, aggregateType, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		event.WithCorrelationID(correlationID)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("session_id", sessionID),
	)
	return nil
}

func itemData(items []domain.LineItem) []CartItemData {
	out := make([]CartItemData, len(items))
	for i, item := range items {
		out[i] = CartItemData{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			UnitPrice: domain.DiscountedPrice(item.Product),
			Quantity:  item.Quantity,
		}
	}
	return out
}
