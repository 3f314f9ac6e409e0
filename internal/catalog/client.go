package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pauloargenal/e-commerce-deployed/internal/domain"
	"github.com/pauloargenal/e-commerce-deployed/pkg/errors"
)

// Getter issues GET requests. Both httpclient.Client and
// httpclient.CircuitBreakerClient satisfy it.
type Getter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Client talks to the upstream catalog over its REST API. Requests are made
// exactly once per call; retry behavior belongs to the shopper, not this
// client, so wire it with a non-retrying HTTP client.
type Client struct {
	http    Getter
	baseURL string
}

// NewClient creates a catalog client for the given base URL
// (e.g. "https://dummyjson.com").
func NewClient(httpClient Getter, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}
}

// ListProducts fetches a page of the full catalog.
func (c *Client) ListProducts(ctx context.Context, limit, skip int) (domain.ProductPage, error) {
	var page domain.ProductPage
	endpoint := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return domain.ProductPage{}, err
	}
	return page, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return domain.Product{}, errors.Upstream("catalog", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return domain.Product{}, errors.NotFound("product", strconv.FormatInt(id, 10))
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Product{}, errors.Upstream("catalog",
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint))
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return domain.Product{}, errors.Upstream("catalog", fmt.Errorf("decode product: %w", err))
	}
	return product, nil
}

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	endpoint := c.baseURL + "/products/categories"
	if err := c.getJSON(ctx, endpoint, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListByCategory fetches a page of products in one category.
func (c *Client) ListByCategory(ctx context.Context, slug string, limit, skip int) (domain.ProductPage, error) {
	var page domain.ProductPage
	endpoint := fmt.Sprintf("%s/products/category/%s?limit=%d&skip=%d",
		c.baseURL, url.PathEscape(slug), limit, skip)
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return domain.ProductPage{}, err
	}
	return page, nil
}

// Search runs a full-text search on the upstream catalog. An empty query is
// passed through unchanged; the upstream treats it as an unfiltered listing.
func (c *Client) Search(ctx context.Context, query string, limit, skip int) (domain.ProductPage, error) {
	var page domain.ProductPage
	endpoint := fmt.Sprintf("%s/products/search?q=%s&limit=%d&skip=%d",
		c.baseURL, url.QueryEscape(query), limit, skip)
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return domain.ProductPage{}, err
	}
	return page, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return errors.Upstream("catalog", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errors.Upstream("catalog",
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Upstream("catalog", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// drainAndClose empties the body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
