// Package catalog derives the visible slice of the product grid from the
// loaded product list and the user's search, sort, and page inputs. All
// derivations are pure; the loaded list is never mutated.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vitrine/internal/fakestore"
)

// DefaultPageSize is how many products a catalog page shows.
const DefaultPageSize = 8

// Key selects which product field drives the sort.
type Key int

const (
	ByTitle Key = iota
	ByPrice
	ByRating
)

func (k Key) String() string {
	switch k {
	case ByPrice:
		return "preço"
	case ByRating:
		return "avaliação"
	default:
		return "título"
	}
}

// Direction selects ascending or descending order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Sort is an active sort specification. The zero value is the default:
// title ascending.
type Sort struct {
	Key Key
	Dir Direction
}

// Query is the full set of UI inputs the derivation depends on.
type Query struct {
	Search   string
	Sort     Sort
	Page     int // 1-based; values below 1 are treated as 1
	PageSize int // 0 selects DefaultPageSize
}

// Page is one derived page of the catalog. HasPrev/HasNext drive the
// enablement of the pagination controls; navigation never wraps.
type Page struct {
	Items      []fakestore.Product
	Total      int // filtered item count
	TotalPages int // ceil(Total / PageSize); 0 when nothing matches
	Number     int
	HasPrev    bool
	HasNext    bool
}

// Title comparison is locale-aware; the storefront displays in pt-BR.
// A collator is not safe for concurrent use, but all derivation happens
// on the UI event loop.
var collator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

// Apply derives one page from the loaded list and the query.
func Apply(products []fakestore.Product, q Query) Page {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := Filter(products, q.Search)
	sortProducts(filtered, q.Sort)

	total := len(filtered)
	totalPages := (total + size - 1) / size

	var items []fakestore.Product
	if start := (page - 1) * size; start < total {
		end := start + size
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Page{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Number:     page,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Filter returns the products whose title contains the search text,
// case-insensitively. Non-matching products are excluded entirely.
func Filter(products []fakestore.Product, search string) []fakestore.Product {
	out := make([]fakestore.Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, p := range products {
		if needle == "" || strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the list in place. Titles compare with pt-BR
// collation; price and rating compare numerically. Ties keep their
// relative order, though callers must not depend on that.
func sortProducts(products []fakestore.Product, s Sort) {
	less := func(a, b fakestore.Product) bool {
		switch s.Key {
		case ByPrice:
			return a.Price < b.Price
		case ByRating:
			return a.Rating.Rate < b.Rating.Rate
		default:
			return collator.CompareString(a.Title, b.Title) < 0
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if s.Dir == Descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
