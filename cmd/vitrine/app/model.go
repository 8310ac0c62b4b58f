// Package app wires the storefront pages into a single bubbletea program.
// The top-level Model is the view router: exactly one page is visible at
// a time, selected by whether a session exists and whether a product id
// is selected. The functionality is split across files:
//   - model.go: types and construction
//   - model_update.go: the Update loop and routing
//   - commands.go: network fetches as tea.Cmds
//   - view.go: chrome (header/footer) and page rendering
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vitrine/cmd/vitrine/ui"
	"vitrine/internal/config"
	"vitrine/internal/fakestore"
	"vitrine/internal/session"
)

// ViewMode determines which page is visible.
type ViewMode int

const (
	LoginView ViewMode = iota
	CatalogView
	DetailView
	CartView
)

// loginFailedMessage is the single message shown for any login failure;
// bad credentials and server errors are deliberately indistinguishable.
const loginFailedMessage = "Usuário ou senha inválidos"

// Model is the root model of the storefront TUI.
type Model struct {
	cfg    config.Config
	client *fakestore.Client
	loader *session.Loader
	logger *zap.Logger
	styles ui.Styles

	viewMode ViewMode
	login    ui.LoginPageModel
	catalog  ui.CatalogPageModel
	detail   ui.DetailPageModel
	cart     ui.CartPageModel

	session    *session.Session
	selectedID int // 0 means no product selected

	width  int
	height int
	ready  bool

	// Each fetch gets a generation number; completions from an older
	// generation are dropped and their contexts cancelled, so a page
	// torn down mid-fetch can never receive a stale update.
	fetchSeq    int
	cancelFetch context.CancelFunc
}

// New builds the root model.
func New(cfg config.Config, client *fakestore.Client, loader *session.Loader, logger *zap.Logger) Model {
	styles := ui.StylesFor(cfg.UI.DarkMode)
	return Model{
		cfg:      cfg,
		client:   client,
		loader:   loader,
		logger:   logger,
		styles:   styles,
		viewMode: LoginView,
		login:    ui.NewLoginPageModel(styles, cfg.Login.Username, cfg.Login.Password),
		catalog:  ui.NewCatalogPageModel(styles, cfg.UI.PageSize),
		detail:   ui.NewDetailPageModel(styles),
		cart:     ui.NewCartPageModel(styles),
	}
}

// Init starts the login form cursor.
func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

// beginFetch cancels any outstanding fetch and opens a new generation.
func (m *Model) beginFetch() (context.Context, int) {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFetch = cancel
	m.fetchSeq++
	return ctx, m.fetchSeq
}

// abandonFetch cancels any outstanding fetch without starting a new one.
// Completions already in flight are dropped by the generation check.
func (m *Model) abandonFetch() {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	m.fetchSeq++
}
