package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vitrine/cmd/vitrine/ui"
	"vitrine/internal/fakestore"
)

// Update routes messages to the active page and drives the view-state
// machine: {Login, Catalog, Detail(id), Cart}.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			m.width = msg.Width
			m.height = msg.Height
			m.ready = true
			body := m.bodyHeight()
			m.login.SetSize(msg.Width, body)
			m.catalog.SetSize(msg.Width, body)
			m.detail.SetSize(msg.Width, body)
			m.cart.SetSize(msg.Width, body)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.abandonFetch()
			return m, tea.Quit
		case "c":
			// Toggle the cart, unless the keystroke belongs to a
			// text field.
			if m.session != nil && !m.typing() {
				if m.viewMode == CartView {
					m.viewMode = CatalogView
				} else if m.viewMode == CatalogView {
					m.viewMode = CartView
				}
				return m, nil
			}
		}
		return m.updateActivePage(msg)

	case ui.LoginSubmitMsg:
		if m.login.Submitting() {
			return m, nil
		}
		spinCmd := m.login.SetSubmitting(true)
		ctx, seq := m.beginFetch()
		creds := fakestore.Credentials{Username: msg.Username, Password: msg.Password}
		return m, tea.Batch(spinCmd, loginCmd(ctx, m.client, creds, seq))

	case loginResultMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("login failed", zap.Error(msg.err))
			m.login.SetError(loginFailedMessage)
			return m, nil
		}
		// Token in hand: enter the authenticated area and load the
		// session while the catalog shows its loading state.
		m.login.SetSubmitting(false)
		m.viewMode = CatalogView
		spinCmd := m.catalog.StartLoading()
		ctx, seq := m.beginFetch()
		return m, tea.Batch(spinCmd, loadSessionCmd(ctx, m.loader, msg.token, seq))

	case sessionLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			m.catalog.SetError(msg.err.Error())
			return m, nil
		}
		m.session = msg.session
		m.catalog.SetProducts(msg.session.Products)
		m.cart.UpdateContent(msg.session.Cart, msg.session.Products)
		return m, nil

	case ui.ProductSelectedMsg:
		m.selectedID = msg.ID
		m.viewMode = DetailView
		spinCmd := m.detail.StartLoading(msg.ID)
		ctx, seq := m.beginFetch()
		return m, tea.Batch(spinCmd, loadProductCmd(ctx, m.client, msg.ID, seq))

	case productLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if msg.err != nil {
			var statusErr *fakestore.StatusError
			switch {
			case errors.Is(msg.err, fakestore.ErrEmptyPayload):
				m.detail.SetNotFound()
			case errors.As(msg.err, &statusErr) && statusErr.Code == 404:
				m.detail.SetNotFound()
			default:
				m.detail.SetError(msg.err.Error())
			}
			return m, nil
		}
		m.detail.SetProduct(msg.product)
		return m, nil

	case ui.BackMsg:
		m.abandonFetch()
		m.selectedID = 0
		m.viewMode = CatalogView
		return m, nil
	}

	return m.updateActivePage(msg)
}

// updateActivePage forwards a message to whichever page is visible.
func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.viewMode {
	case LoginView:
		m.login, cmd = m.login.Update(msg)
	case CatalogView:
		m.catalog, cmd = m.catalog.Update(msg)
	case DetailView:
		m.detail, cmd = m.detail.Update(msg)
	case CartView:
		m.cart, cmd = m.cart.Update(msg)
	}
	return m, cmd
}

// typing reports whether the visible page currently owns free-text input.
func (m Model) typing() bool {
	return m.viewMode == LoginView ||
		(m.viewMode == CatalogView && m.catalog.SearchFocused())
}
