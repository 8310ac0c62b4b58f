package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/fakestore"
)

// DetailState tracks the loading lifecycle of the detail view.
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailError
	DetailNotFound
	DetailReady
)

// DetailPageModel shows a single product. Every activation re-fetches;
// nothing is cached across visits.
type DetailPageModel struct {
	width  int
	height int

	productID int
	state     DetailState
	errMsg    string
	product   fakestore.Product

	spinner  spinner.Model
	viewport viewport.Model

	styles Styles
}

// NewDetailPageModel creates the detail page.
func NewDetailPageModel(styles Styles) DetailPageModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))
	vp := viewport.New(60, 10)
	return DetailPageModel{
		state:    DetailLoading,
		spinner:  sp,
		viewport: vp,
		styles:   styles,
	}
}

// Update handles messages.
func (m DetailPageModel) Update(msg tea.Msg) (DetailPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state == DetailLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackMsg{} }
		}
		if m.state == DetailReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// StartLoading resets the page for a fresh fetch of the given product.
func (m *DetailPageModel) StartLoading(productID int) tea.Cmd {
	m.productID = productID
	m.state = DetailLoading
	m.errMsg = ""
	m.product = fakestore.Product{}
	return m.spinner.Tick
}

// SetProduct installs the fetched product.
func (m *DetailPageModel) SetProduct(p fakestore.Product) {
	m.product = p
	m.state = DetailReady
	m.viewport.SetContent(m.styles.Body.Render(p.Description))
	m.viewport.GotoTop()
}

// SetError shows a fetch failure.
func (m *DetailPageModel) SetError(msg string) {
	m.state = DetailError
	m.errMsg = msg
}

// SetNotFound marks the product as absent: the fetch succeeded but the
// payload was unusable.
func (m *DetailPageModel) SetNotFound() {
	m.state = DetailNotFound
}

// State returns the loading lifecycle state.
func (m DetailPageModel) State() DetailState {
	return m.state
}

// ProductID returns the id this page is showing.
func (m DetailPageModel) ProductID() int {
	return m.productID
}

// SetSize updates the size.
func (m *DetailPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	vw := w - 8
	if vw < 20 {
		vw = 20
	}
	vh := h - 12
	if vh < 4 {
		vh = 4
	}
	m.viewport.Width = vw
	m.viewport.Height = vh
}

// View renders the page.
func (m DetailPageModel) View() string {
	switch m.state {
	case DetailLoading:
		return m.styles.Content.Render(m.spinner.View() + " Carregando produto...")
	case DetailError:
		return m.styles.Content.Render(
			m.styles.Error.Render("Erro ao carregar produto: "+m.errMsg) +
				"\n\n" + m.styles.Muted.Render("[Esc] Voltar"))
	case DetailNotFound:
		return m.styles.Content.Render(
			m.styles.Warning.Render(fmt.Sprintf("Produto %d não encontrado.", m.productID)) +
				"\n\n" + m.styles.Muted.Render("[Esc] Voltar"))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.product.Title) + "\n")
	sb.WriteString(m.styles.Subtitle.Render(m.product.Category) + "\n\n")
	sb.WriteString(m.styles.Price.Render(FormatPrice(m.product.Price)))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("   ★ %.1f (%d avaliações)", m.product.Rating.Rate, m.product.Rating.Count)))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render(truncate(m.product.Image, 60)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[Esc] Voltar  [↑/↓] Descrição"))

	return m.styles.Content.Render(sb.String())
}
