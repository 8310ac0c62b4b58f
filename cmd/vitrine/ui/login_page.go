package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginPageModel is the credential form gating the storefront.
type LoginPageModel struct {
	width  int
	height int

	username textinput.Model
	password textinput.Model
	focus    int // 0 = username, 1 = password

	spinner    spinner.Model
	submitting bool
	errMsg     string

	styles Styles
}

// NewLoginPageModel creates the login form, pre-filled with the given
// sample credentials.
func NewLoginPageModel(styles Styles, username, password string) LoginPageModel {
	u := textinput.New()
	u.Placeholder = "usuário"
	u.CharLimit = 64
	u.Width = 30
	u.SetValue(username)
	u.Focus()

	p := textinput.New()
	p.Placeholder = "senha"
	p.CharLimit = 64
	p.Width = 30
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.SetValue(password)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	return LoginPageModel{
		username: u,
		password: p,
		spinner:  sp,
		styles:   styles,
	}
}

// Init starts the cursor blink.
func (m LoginPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m LoginPageModel) Update(msg tea.Msg) (LoginPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The form is frozen while a submission is in flight.
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.password.Blur()
				return m, m.username.Focus()
			}
			m.username.Blur()
			return m, m.password.Focus()
		case "enter":
			return m, m.submit()
		}

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit emits the credential pair, or nothing when a field is empty.
// Empty fields never reach the network.
func (m LoginPageModel) submit() tea.Cmd {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	if username == "" || password == "" {
		return nil
	}
	return func() tea.Msg {
		return LoginSubmitMsg{Username: username, Password: password}
	}
}

// SetSubmitting toggles the in-flight state and returns the spinner tick
// when entering it.
func (m *LoginPageModel) SetSubmitting(submitting bool) tea.Cmd {
	m.submitting = submitting
	if submitting {
		m.errMsg = ""
		return m.spinner.Tick
	}
	return nil
}

// SetError shows a failure message under the form.
func (m *LoginPageModel) SetError(msg string) {
	m.submitting = false
	m.errMsg = msg
}

// Submitting reports whether a submission is in flight.
func (m LoginPageModel) Submitting() bool {
	return m.submitting
}

// SetSize updates the size.
func (m *LoginPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the page.
func (m LoginPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Entrar") + "\n\n")
	sb.WriteString(m.styles.Muted.Render("Usuário") + "\n")
	sb.WriteString(m.username.View() + "\n\n")
	sb.WriteString(m.styles.Muted.Render("Senha") + "\n")
	sb.WriteString(m.password.View() + "\n\n")

	if m.submitting {
		sb.WriteString(m.styles.ButtonOff.Render("Entrando...") + " " + m.spinner.View())
	} else {
		sb.WriteString(m.styles.Button.Render("Entrar"))
		sb.WriteString(m.styles.Muted.Render("  [Enter]"))
	}

	if m.errMsg != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	}

	card := m.styles.Card.Width(40).Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
