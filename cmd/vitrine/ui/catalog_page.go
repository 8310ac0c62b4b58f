package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/catalog"
	"vitrine/internal/fakestore"
)

// CatalogState tracks the loading lifecycle of the product list.
type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogError
	CatalogReady
)

const catalogColumns = 4

// CatalogPageModel is the product grid with search, sort, and pagination.
// The loaded list is held as-is; every visible slice is derived through
// the catalog package.
type CatalogPageModel struct {
	width  int
	height int

	state  CatalogState
	errMsg string

	spinner spinner.Model

	search        textinput.Model
	searchFocused bool

	products []fakestore.Product
	query    catalog.Query
	page     catalog.Page
	selected int // index within page.Items

	styles Styles
}

// NewCatalogPageModel creates the catalog page.
func NewCatalogPageModel(styles Styles, pageSize int) CatalogPageModel {
	si := textinput.New()
	si.Placeholder = "Buscar produtos..."
	si.CharLimit = 64
	si.Width = 36

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}

	return CatalogPageModel{
		state:   CatalogLoading,
		spinner: sp,
		search:  si,
		query:   catalog.Query{Page: 1, PageSize: pageSize},
		styles:  styles,
	}
}

// Init starts the loading spinner.
func (m CatalogPageModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m CatalogPageModel) Update(msg tea.Msg) (CatalogPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state == CatalogLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.state != CatalogReady {
			return m, nil
		}

		if m.searchFocused {
			switch msg.String() {
			case "esc", "enter":
				m.searchFocused = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			// Live filtering: every query change restarts at page 1.
			if m.search.Value() != m.query.Search {
				m.query.Search = m.search.Value()
				m.query.Page = 1
				m.selected = 0
				m.applyQuery()
			}
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searchFocused = true
			return m, m.search.Focus()
		case "s":
			// Cycling the sort key resets pagination.
			m.query.Sort.Key = (m.query.Sort.Key + 1) % 3
			m.query.Page = 1
			m.selected = 0
			m.applyQuery()
		case "o":
			// Direction flips in place; the page is kept.
			if m.query.Sort.Dir == catalog.Ascending {
				m.query.Sort.Dir = catalog.Descending
			} else {
				m.query.Sort.Dir = catalog.Ascending
			}
			m.applyQuery()
		case "n", "pgdown":
			if m.page.HasNext {
				m.query.Page++
				m.selected = 0
				m.applyQuery()
			}
		case "p", "pgup":
			if m.page.HasPrev {
				m.query.Page--
				m.selected = 0
				m.applyQuery()
			}
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
		case "right", "l":
			if m.selected < len(m.page.Items)-1 {
				m.selected++
			}
		case "up", "k":
			if m.selected >= catalogColumns {
				m.selected -= catalogColumns
			}
		case "down", "j":
			if m.selected+catalogColumns < len(m.page.Items) {
				m.selected += catalogColumns
			}
		case "enter":
			if m.selected < len(m.page.Items) {
				id := m.page.Items[m.selected].ID
				return m, func() tea.Msg { return ProductSelectedMsg{ID: id} }
			}
		}

	default:
		// Cursor blink and friends still reach the search field.
		if m.searchFocused {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// applyQuery re-derives the visible page from the loaded list.
func (m *CatalogPageModel) applyQuery() {
	m.page = catalog.Apply(m.products, m.query)
	if m.selected >= len(m.page.Items) {
		m.selected = 0
	}
}

// SetProducts installs the loaded list and moves the page to ready.
func (m *CatalogPageModel) SetProducts(products []fakestore.Product) {
	m.products = products
	m.state = CatalogReady
	m.errMsg = ""
	m.applyQuery()
}

// SetError moves the page to its terminal error state. There is no
// retry; recovery requires remounting the page.
func (m *CatalogPageModel) SetError(msg string) {
	m.state = CatalogError
	m.errMsg = msg
}

// StartLoading resets the page to the loading state.
func (m *CatalogPageModel) StartLoading() tea.Cmd {
	m.state = CatalogLoading
	m.errMsg = ""
	return m.spinner.Tick
}

// State returns the loading lifecycle state.
func (m CatalogPageModel) State() CatalogState {
	return m.state
}

// SearchFocused reports whether keystrokes go to the search field.
func (m CatalogPageModel) SearchFocused() bool {
	return m.searchFocused
}

// Page exposes the currently derived page.
func (m CatalogPageModel) Page() catalog.Page {
	return m.page
}

// SetSize updates the size.
func (m *CatalogPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the page.
func (m CatalogPageModel) View() string {
	switch m.state {
	case CatalogLoading:
		return m.styles.Content.Render(m.spinner.View() + " Carregando produtos...")
	case CatalogError:
		return m.styles.Content.Render(m.styles.Error.Render("Erro ao carregar produtos: " + m.errMsg))
	}

	var sb strings.Builder

	sb.WriteString(m.renderSearchBar())
	sb.WriteString("\n")
	sb.WriteString(m.renderSortBar())
	sb.WriteString("\n\n")

	if len(m.page.Items) == 0 {
		sb.WriteString(m.styles.Muted.Render("Nenhum produto encontrado."))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(m.renderGrid())
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderPagination())

	return m.styles.Content.Render(sb.String())
}

func (m CatalogPageModel) renderSearchBar() string {
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Border).
		Padding(0, 1)
	if m.searchFocused {
		searchStyle = searchStyle.BorderForeground(m.styles.Theme.Primary)
	}

	count := m.styles.Muted.Render(fmt.Sprintf("%d produtos", m.page.Total))
	hint := m.styles.Muted.Render("[/] Buscar")
	return lipgloss.JoinHorizontal(lipgloss.Center,
		searchStyle.Render(m.search.View()), "  ", count, "  ", hint)
}

func (m CatalogPageModel) renderSortBar() string {
	arrow := "↑"
	if m.query.Sort.Dir == catalog.Descending {
		arrow = "↓"
	}
	active := lipgloss.NewStyle().
		Foreground(m.styles.Theme.Primary).
		Bold(true).
		Underline(true)

	var sb strings.Builder
	sb.WriteString(m.styles.Muted.Render("Ordenar: "))
	for _, key := range []catalog.Key{catalog.ByTitle, catalog.ByPrice, catalog.ByRating} {
		label := key.String()
		if key == m.query.Sort.Key {
			sb.WriteString(active.Render(label + " " + arrow))
		} else {
			sb.WriteString(m.styles.Muted.Render(label))
		}
		sb.WriteString("  ")
	}
	sb.WriteString(m.styles.Muted.Render("[s] Chave  [o] Ordem"))
	return sb.String()
}

func (m CatalogPageModel) renderGrid() string {
	cardWidth := m.cardWidth()

	var rows []string
	for start := 0; start < len(m.page.Items); start += catalogColumns {
		end := start + catalogColumns
		if end > len(m.page.Items) {
			end = len(m.page.Items)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.page.Items[i], cardWidth, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m CatalogPageModel) renderCard(p fakestore.Product, width int, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}

	title := truncate(p.Title, width-2)
	price := m.styles.Price.Render(FormatPrice(p.Price))
	rating := m.styles.Muted.Render(fmt.Sprintf("★ %.1f (%d)", p.Rating.Rate, p.Rating.Count))
	category := m.styles.Subtitle.Render(truncate(p.Category, width-2))

	body := lipgloss.JoinVertical(lipgloss.Left, title, category, price, rating)
	return style.Width(width).Render(body)
}

func (m CatalogPageModel) renderPagination() string {
	prev := m.styles.ButtonOff.Render("Anterior")
	if m.page.HasPrev {
		prev = m.styles.Button.Render("Anterior")
	}
	next := m.styles.ButtonOff.Render("Próxima")
	if m.page.HasNext {
		next = m.styles.Button.Render("Próxima")
	}

	// An empty result still reads coherently: "página 1 de 0".
	label := m.styles.Muted.Render(fmt.Sprintf("página %d de %d", m.page.Number, m.page.TotalPages))
	hint := m.styles.Muted.Render("[p/n]")
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", label, " ", next, "  ", hint)
}

func (m CatalogPageModel) cardWidth() int {
	if m.width <= 0 {
		return 24
	}
	w := (m.width - 8) / catalogColumns
	if w < 16 {
		w = 16
	}
	if w > 32 {
		w = 32
	}
	return w
}

// truncate shortens a string to at most n cells, rune-aware.
func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
