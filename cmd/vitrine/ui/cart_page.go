package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/fakestore"
)

// CartPageModel renders the read-only cart: line items resolved against
// the loaded product list. Selecting a row opens that product's detail.
type CartPageModel struct {
	width  int
	height int

	table    table.Model
	cart     *fakestore.Cart
	products []fakestore.Product
	rowIDs   []int // product id per table row

	styles Styles
}

// NewCartPageModel creates the cart page.
func NewCartPageModel(styles Styles) CartPageModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Produto", Width: 40},
			{Title: "Qtd", Width: 5},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	return CartPageModel{
		table:  t,
		styles: styles,
	}
}

// Update handles messages.
func (m CartPageModel) Update(msg tea.Msg) (CartPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackMsg{} }
		case "enter":
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.rowIDs) {
				id := m.rowIDs[cursor]
				return m, func() tea.Msg { return ProductSelectedMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// UpdateContent installs the cart and the product list used to resolve
// line-item titles.
func (m *CartPageModel) UpdateContent(cart *fakestore.Cart, products []fakestore.Product) {
	m.cart = cart
	m.products = products

	var rows []table.Row
	m.rowIDs = m.rowIDs[:0]
	if cart != nil {
		for _, item := range cart.Products {
			rows = append(rows, table.Row{
				ResolveTitle(products, item.ProductID),
				strconv.Itoa(item.Quantity),
			})
			m.rowIDs = append(m.rowIDs, item.ProductID)
		}
	}
	m.table.SetRows(rows)
}

// ItemCount returns how many line items the cart holds.
func (m CartPageModel) ItemCount() int {
	if m.cart == nil {
		return 0
	}
	return len(m.cart.Products)
}

// SetSize updates the size.
func (m *CartPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	tw := w - 8
	if tw < 30 {
		tw = 30
	}
	m.table.SetWidth(tw)
	th := h - 8
	if th < 4 {
		th = 4
	}
	m.table.SetHeight(th)
}

// View renders the page.
func (m CartPageModel) View() string {
	var sb strings.Builder

	count := m.ItemCount()
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Carrinho (%d itens)", count)) + "\n\n")

	if count == 0 {
		sb.WriteString(m.styles.Muted.Render("Seu carrinho está vazio."))
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("[Enter] Ver produto"))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("[Esc] Voltar"))

	return m.styles.Content.Render(sb.String())
}

// ResolveTitle looks a product title up by id, falling back to a
// placeholder when the id is absent from the loaded list.
func ResolveTitle(products []fakestore.Product, id int) string {
	for _, p := range products {
		if p.ID == id {
			return p.Title
		}
	}
	return fmt.Sprintf("Produto %d", id)
}
