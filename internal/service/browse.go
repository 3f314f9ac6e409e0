package service

import (
	"context"
	"log/slog"

	"github.com/pauloargenal/e-commerce-deployed/internal/catalog"
	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/internal/repository"
	"github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

// browseFetchLimit is how many products a refresh pulls from the catalog;
// filtering and sorting happen locally over this window.
const browseFetchLimit = 100

// SetFiltersInput holds the parameters for updating the browse filters.
// Omitted fields keep their current values.
type SetFiltersInput struct {
	Search    *string `json:"search"`
	Category  *string `json:"category"`
	SortBy    *string `json:"sortBy"`
	SortOrder *string `json:"sortOrder"`
}

// BrowseView is what the product listing renders: the active filters and the
// derived (filtered, sorted) product list.
type BrowseView struct {
	Filters  domain.ProductFilters `json:"filters"`
	Products []domain.Product      `json:"products"`
	Total    int                   `json:"total"`
}

// BrowseService maintains the per-session product listing view.
type BrowseService struct {
	repo    repository.SessionRepository
	catalog catalog.Source
	logger  *slog.Logger
}

// NewBrowseService creates a new browse service.
func NewBrowseService(repo repository.SessionRepository, source catalog.Source, logger *slog.Logger) *BrowseService {
	return &BrowseService{
		repo:    repo,
		catalog: source,
		logger:  logger,
	}
}

// GetView returns the session's current browse view. The derived product
// list is recomputed from the last applied catalog snapshot on every read.
func (s *BrowseService) GetView(ctx context.Context, sessionID string) (*BrowseView, error) {
	sess, err := s.repo.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return deriveView(sess.Browse), nil
}

// SetFilters updates the browse filters. Filtering and sorting are local
// operations over the already-fetched snapshot, so no catalog call is made.
func (s *BrowseService) SetFilters(ctx context.Context, sessionID string, input SetFiltersInput) (*BrowseView, error) {
	if input.SortBy != nil && !domain.ValidSortKey(*input.SortBy) {
		return nil, errors.InvalidInput("sortBy must be one of: title, price, rating, stock")
	}
	if input.SortOrder != nil && !domain.ValidSortOrder(*input.SortOrder) {
		return nil, errors.InvalidInput("sortOrder must be one of: asc, desc")
	}

	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		f := &sess.Browse.Filters
		if input.Search != nil {
			f.Search = *input.Search
		}
		if input.Category != nil {
			f.Category = *input.Category
		}
		if input.SortBy != nil {
			f.SortBy = domain.SortKey(*input.SortBy)
		}
		if input.SortOrder != nil {
			f.SortOrder = domain.SortOrder(*input.SortOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deriveView(sess.Browse), nil
}

// ClearFilters resets the browse filters to their defaults.
func (s *BrowseService) ClearFilters(ctx context.Context, sessionID string) (*BrowseView, error) {
	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.Browse.Filters = domain.DefaultFilters()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deriveView(sess.Browse), nil
}

// Refresh fetches a fresh catalog snapshot for the session. Each refresh is
// tagged with an issuance sequence number before the fetch starts; when the
// fetch completes, its result is applied only if no newer refresh has been
// issued in the meantime. The returned view reflects whichever snapshot won.
func (s *BrowseService) Refresh(ctx context.Context, sessionID string) (*BrowseView, error) {
	var seq uint64
	_, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		seq = sess.Browse.IssueSeq()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The catalog fetch runs outside the session lock so a slow upstream
	// never blocks other mutations for this session.
	page, err := s.catalog.ListProducts(ctx, browseFetchLimit, 0)
	if err != nil {
		return nil, err
	}

	sess, err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if !sess.Browse.Apply(seq, page.Products, page.Total) {
			s.logger.DebugContext(ctx, "discarded stale browse refresh",
				slog.String("session_id", sessionID),
				slog.Uint64("seq", seq),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deriveView(sess.Browse), nil
}

func deriveView(b *domain.BrowseState) *BrowseView {
	filtered := domain.FilterProducts(b.Products, b.Filters)
	sorted := domain.SortProducts(filtered, b.Filters.SortBy, b.Filters.SortOrder)
	return &BrowseView{
		Filters:  b.Filters,
		Products: sorted,
		Total:    len(sorted),
	}
}
