package domain

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// Collator.CompareString mutates collator-internal buffers, so a
	// collator must never be shared across goroutines.
	titleCollators = sync.Pool{
		New: func() any { return collate.New(language.English) },
	}
	pricePrinter = message.NewPrinter(language.English)
)

// FilterProducts returns the products matching the given filters. The search
// term is trimmed and matched case-insensitively against title, description,
// and category. A category of "all" (or empty) matches every product.
func FilterProducts(products []Product, filters ProductFilters) []Product {
	filtered := make([]Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(filters.Search))
	category := filters.Category

	for _, p := range products {
		if term != "" {
			if !strings.Contains(strings.ToLower(p.Title), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) &&
				!strings.Contains(strings.ToLower(p.Category), term) {
				continue
			}
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// SortProducts returns a sorted copy of products. Title ordering is
// locale-aware; price, rating, and stock compare numerically. The sort is
// stable so equal elements keep their catalog order.
func SortProducts(products []Product, sortBy SortKey, order SortOrder) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	collator := titleCollators.Get().(*collate.Collator)
	defer titleCollators.Put(collator)

	compare := func(a, b Product) int {
		switch sortBy {
		case SortByPrice:
			return compareFloat(a.Price, b.Price)
		case SortByRating:
			return compareFloat(a.Rating, b.Rating)
		case SortByStock:
			return compareFloat(float64(a.Stock), float64(b.Stock))
		default:
			return collator.CompareString(a.Title, b.Title)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j])
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})

	return sorted
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DiscountedPrice returns the product's unit price after its catalog
// discount, floored at zero.
func DiscountedPrice(p Product) float64 {
	price := p.Price * (1 - p.DiscountPercentage/100)
	if price < 0 {
		return 0
	}
	return price
}

// FormatPrice renders a price for display, e.g. 1234.5 -> "$1,234.50".
func FormatPrice(value float64) string {
	return pricePrinter.Sprintf("$%v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
