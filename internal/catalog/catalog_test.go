package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vitrine/internal/fakestore"
)

func sampleProducts() []fakestore.Product {
	return []fakestore.Product{
		{ID: 1, Title: "Mochila Fjallraven", Price: 109.95, Rating: fakestore.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Camiseta Casual", Price: 22.3, Rating: fakestore.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Jaqueta de Algodão", Price: 55.99, Rating: fakestore.Rating{Rate: 4.7, Count: 500}},
		{ID: 4, Title: "camiseta slim fit", Price: 15.99, Rating: fakestore.Rating{Rate: 2.1, Count: 430}},
		{ID: 5, Title: "Pulseira de Prata", Price: 695.0, Rating: fakestore.Rating{Rate: 4.6, Count: 400}},
	}
}

func TestFilterIsCaseInsensitiveSubset(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, "CAMISETA")

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, p := range got {
		if !strings.Contains(strings.ToLower(p.Title), "camiseta") {
			t.Errorf("filtered item %q does not contain the query", p.Title)
		}
	}

	// Every excluded item must genuinely not match.
	matched := map[int]bool{}
	for _, p := range got {
		matched[p.ID] = true
	}
	for _, p := range products {
		if !matched[p.ID] && strings.Contains(strings.ToLower(p.Title), "camiseta") {
			t.Errorf("item %q matches but was excluded", p.Title)
		}
	}
}

func TestFilterEmptyQueryKeepsOrder(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, "")
	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("empty query changed the list (-want +got):\n%s", diff)
	}
}

func TestSortPriceAscendingThenDescendingReverses(t *testing.T) {
	asc := Apply(sampleProducts(), Query{Sort: Sort{Key: ByPrice, Dir: Ascending}})
	desc := Apply(sampleProducts(), Query{Sort: Sort{Key: ByPrice, Dir: Descending}})

	if len(asc.Items) != len(desc.Items) {
		t.Fatalf("page sizes differ: %d vs %d", len(asc.Items), len(desc.Items))
	}
	n := len(asc.Items)
	for i := range asc.Items {
		if asc.Items[i].ID != desc.Items[n-1-i].ID {
			t.Errorf("position %d: asc id %d, desc mirror id %d", i, asc.Items[i].ID, desc.Items[n-1-i].ID)
		}
	}
	for i := 1; i < n; i++ {
		if asc.Items[i-1].Price > asc.Items[i].Price {
			t.Errorf("ascending order violated at %d: %v > %v", i, asc.Items[i-1].Price, asc.Items[i].Price)
		}
	}
}

func TestSortRatingDescending(t *testing.T) {
	page := Apply(sampleProducts(), Query{Sort: Sort{Key: ByRating, Dir: Descending}})
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i-1].Rating.Rate < page.Items[i].Rating.Rate {
			t.Errorf("rating order violated at %d: %v < %v",
				i, page.Items[i-1].Rating.Rate, page.Items[i].Rating.Rate)
		}
	}
	if page.Items[0].ID != 3 {
		t.Errorf("expected best-rated product first, got id %d", page.Items[0].ID)
	}
}

func TestSortTitleUsesLocaleAndIgnoresCase(t *testing.T) {
	products := []fakestore.Product{
		{ID: 1, Title: "Zebra"},
		{ID: 2, Title: "água mineral"},
		{ID: 3, Title: "Abajur"},
	}
	page := Apply(products, Query{})

	// Byte order would put "água" after "Zebra"; pt-BR collation must not.
	wantOrder := []int{3, 2, 1}
	for i, want := range wantOrder {
		if page.Items[i].ID != want {
			t.Fatalf("position %d: want id %d, got %d (%q)", i, want, page.Items[i].ID, page.Items[i].Title)
		}
	}
}

func TestTotalPagesIsCeiling(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
	}
	for _, tc := range cases {
		products := make([]fakestore.Product, tc.n)
		for i := range products {
			products[i] = fakestore.Product{ID: i + 1, Title: fmt.Sprintf("Produto %03d", i+1)}
		}
		page := Apply(products, Query{PageSize: tc.size})
		if page.TotalPages != tc.want {
			t.Errorf("n=%d size=%d: want %d pages, got %d", tc.n, tc.size, tc.want, page.TotalPages)
		}
	}
}

func TestPaginationScenarioTenItems(t *testing.T) {
	products := make([]fakestore.Product, 10)
	for i := range products {
		products[i] = fakestore.Product{ID: i + 1, Title: fmt.Sprintf("Produto %03d", i+1)}
	}

	first := Apply(products, Query{Page: 1, PageSize: 8})
	if len(first.Items) != 8 {
		t.Fatalf("page 1: want 8 items, got %d", len(first.Items))
	}
	if first.HasPrev {
		t.Error("page 1: previous must be disabled")
	}
	if !first.HasNext {
		t.Error("page 1: next must be enabled")
	}
	if first.Items[0].ID != 1 || first.Items[7].ID != 8 {
		t.Errorf("page 1: want items 1..8, got %d..%d", first.Items[0].ID, first.Items[7].ID)
	}

	second := Apply(products, Query{Page: 2, PageSize: 8})
	if len(second.Items) != 2 {
		t.Fatalf("page 2: want 2 items, got %d", len(second.Items))
	}
	if !second.HasPrev {
		t.Error("page 2: previous must be enabled")
	}
	if second.HasNext {
		t.Error("page 2: next must be disabled")
	}
	if second.Items[0].ID != 9 || second.Items[1].ID != 10 {
		t.Errorf("page 2: want items 9..10, got %d..%d", second.Items[0].ID, second.Items[1].ID)
	}
}

func TestEmptyFilterResult(t *testing.T) {
	page := Apply(sampleProducts(), Query{Search: "nada disso existe"})
	if page.Total != 0 {
		t.Errorf("want total 0, got %d", page.Total)
	}
	if page.TotalPages != 0 {
		t.Errorf("want 0 pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 0 {
		t.Errorf("want no items, got %d", len(page.Items))
	}
	if page.HasPrev || page.HasNext {
		t.Error("both controls must be disabled on an empty result")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	snapshot := make([]fakestore.Product, len(products))
	copy(snapshot, products)

	Apply(products, Query{Sort: Sort{Key: ByPrice, Dir: Descending}})

	if diff := cmp.Diff(snapshot, products); diff != "" {
		t.Errorf("Apply mutated its input (-want +got):\n%s", diff)
	}
}

func TestPageBeyondEndIsEmptyButCounted(t *testing.T) {
	page := Apply(sampleProducts(), Query{Page: 9, PageSize: 8})
	if len(page.Items) != 0 {
		t.Errorf("want empty page, got %d items", len(page.Items))
	}
	if page.TotalPages != 1 {
		t.Errorf("want 1 total page, got %d", page.TotalPages)
	}
	if !page.HasPrev {
		t.Error("previous should be enabled past the end")
	}
	if page.HasNext {
		t.Error("next should be disabled past the end")
	}
}
