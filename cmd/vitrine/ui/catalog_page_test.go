package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/fakestore"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func numberedProducts(n int) []fakestore.Product {
	products := make([]fakestore.Product, n)
	for i := range products {
		products[i] = fakestore.Product{
			ID:    i + 1,
			Title: fmt.Sprintf("Produto %03d", i+1),
			Price: float64(i + 1),
		}
	}
	return products
}

func TestCatalogPageLoadingState(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	if !strings.Contains(model.View(), "Carregando produtos") {
		t.Fatalf("expected loading indicator, got: %s", model.View())
	}
}

func TestCatalogPageErrorStateIsTerminal(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetError("falha de rede")

	view := model.View()
	if !strings.Contains(view, "falha de rede") {
		t.Fatalf("expected error message, got: %s", view)
	}

	// Keys do nothing in the error state.
	model, _ = model.Update(keyRunes("n"))
	if model.State() != CatalogError {
		t.Fatal("error state must persist until remount")
	}
}

func TestCatalogPageRendersFirstPage(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(10))

	view := model.View()
	if !strings.Contains(view, "Produto 001") {
		t.Error("expected first product on page 1")
	}
	if !strings.Contains(view, "Produto 008") {
		t.Error("expected eighth product on page 1")
	}
	if strings.Contains(view, "Produto 009") {
		t.Error("ninth product must not be on page 1")
	}
	if !strings.Contains(view, "página 1 de 2") {
		t.Errorf("expected page indicator, got: %s", view)
	}
	if !strings.Contains(view, "10 produtos") {
		t.Error("expected total count")
	}
}

func TestCatalogPagePaginationFlow(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(10))

	// Page 1: previous disabled, next enabled.
	if model.Page().HasPrev {
		t.Error("page 1: previous must be disabled")
	}
	if !model.Page().HasNext {
		t.Error("page 1: next must be enabled")
	}

	model, _ = model.Update(keyRunes("n"))
	view := model.View()
	if !strings.Contains(view, "Produto 009") || !strings.Contains(view, "Produto 010") {
		t.Error("expected items 9 and 10 on page 2")
	}
	if !model.Page().HasPrev || model.Page().HasNext {
		t.Error("page 2: enabled states must flip")
	}

	// Next past the last page is a no-op.
	model, _ = model.Update(keyRunes("n"))
	if model.Page().Number != 2 {
		t.Errorf("navigation must not wrap, got page %d", model.Page().Number)
	}

	model, _ = model.Update(keyRunes("p"))
	if model.Page().Number != 1 {
		t.Errorf("expected to be back on page 1, got %d", model.Page().Number)
	}
}

func TestCatalogPageSearchFiltersAndResetsPage(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	products := numberedProducts(10)
	products = append(products, fakestore.Product{ID: 11, Title: "Mochila Azul"})
	model.SetProducts(products)

	// Go to page 2, then search; the query change must reset to page 1.
	model, _ = model.Update(keyRunes("n"))
	if model.Page().Number != 2 {
		t.Fatal("precondition: expected page 2")
	}

	model, _ = model.Update(keyRunes("/"))
	if !model.SearchFocused() {
		t.Fatal("expected search to take focus")
	}
	model, _ = model.Update(keyRunes("mochila"))

	if model.Page().Number != 1 {
		t.Errorf("query change must reset to page 1, got %d", model.Page().Number)
	}
	if model.Page().Total != 1 {
		t.Errorf("expected a single match, got %d", model.Page().Total)
	}
	view := model.View()
	if !strings.Contains(view, "Mochila Azul") {
		t.Error("expected the matching product to render")
	}
	if strings.Contains(view, "Produto 001") {
		t.Error("non-matching products must be excluded entirely")
	}
}

func TestCatalogPageEmptyResultRendersGracefully(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(3))

	model, _ = model.Update(keyRunes("/"))
	model, _ = model.Update(keyRunes("zzz"))

	view := model.View()
	if !strings.Contains(view, "Nenhum produto encontrado") {
		t.Error("expected the empty message")
	}
	if !strings.Contains(view, "página 1 de 0") {
		t.Errorf("expected zero total pages, got: %s", view)
	}
}

func TestCatalogPageSortKeyCycleResetsPage(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(10))

	model, _ = model.Update(keyRunes("n"))
	model, _ = model.Update(keyRunes("s"))
	if model.Page().Number != 1 {
		t.Errorf("sort key change must reset to page 1, got %d", model.Page().Number)
	}
}

func TestCatalogPageDirectionToggleKeepsPage(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(10))

	model, _ = model.Update(keyRunes("n"))
	model, _ = model.Update(keyRunes("o"))
	if model.Page().Number != 2 {
		t.Errorf("direction toggle must keep the page, got %d", model.Page().Number)
	}
}

func TestCatalogPageEnterSelectsProduct(t *testing.T) {
	model := NewCatalogPageModel(DefaultStyles(), 8)
	model.SetSize(120, 40)
	model.SetProducts(numberedProducts(10))

	model, _ = model.Update(keyRunes("l")) // move selection to the second card
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(ProductSelectedMsg)
	if !ok {
		t.Fatalf("expected ProductSelectedMsg, got %T", cmd())
	}
	if msg.ID != model.Page().Items[1].ID {
		t.Errorf("expected the selected card's id, got %d", msg.ID)
	}
}
