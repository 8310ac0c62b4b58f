package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerHeight = 2
const footerHeight = 1

// View renders the chrome and the active page.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}

	var body string
	switch m.viewMode {
	case LoginView:
		body = m.login.View()
	case CatalogView:
		body = m.catalog.View()
	case DetailView:
		body = m.detail.View()
	case CartView:
		body = m.cart.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" vitrine ")

	var right string
	if m.session != nil {
		name := strings.TrimSpace(m.session.User.Name.Firstname)
		if name != "" {
			right = m.styles.Muted.Render("olá, "+name) + " "
		}
		right += m.styles.Badge.Render(fmt.Sprintf("🛒 %d", m.cart.ItemCount()))
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := title + strings.Repeat(" ", gap) + right
	return bar + "\n" + m.styles.RenderDivider(m.width)
}

func (m Model) renderFooter() string {
	var help string
	switch m.viewMode {
	case LoginView:
		help = "[Tab] Campo  [Enter] Entrar  [Ctrl+C] Sair"
	case CatalogView:
		help = "[↑↓←→] Navegar  [Enter] Detalhes  [/] Buscar  [s/o] Ordenar  [p/n] Página  [c] Carrinho  [Ctrl+C] Sair"
	case DetailView:
		help = "[Esc] Voltar  [Ctrl+C] Sair"
	case CartView:
		help = "[Enter] Ver produto  [Esc/c] Voltar  [Ctrl+C] Sair"
	}
	return m.styles.Footer.Render(help)
}

// bodyHeight is the vertical space left for the active page.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return h
}
