package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/fakestore"
	"vitrine/internal/session"
)

// Fetch completions. Every message carries the generation it belongs to;
// the Update loop drops anything from an older generation.

type loginResultMsg struct {
	seq   int
	token string
	err   error
}

type sessionLoadedMsg struct {
	seq     int
	session *session.Session
	err     error
}

type productLoadedMsg struct {
	seq     int
	product fakestore.Product
	err     error
}

func loginCmd(ctx context.Context, client *fakestore.Client, creds fakestore.Credentials, seq int) tea.Cmd {
	return func() tea.Msg {
		token, err := client.Login(ctx, creds)
		return loginResultMsg{seq: seq, token: token, err: err}
	}
}

func loadSessionCmd(ctx context.Context, loader *session.Loader, token string, seq int) tea.Cmd {
	return func() tea.Msg {
		s, err := loader.Load(ctx, token)
		return sessionLoadedMsg{seq: seq, session: s, err: err}
	}
}

func loadProductCmd(ctx context.Context, client *fakestore.Client, id, seq int) tea.Cmd {
	return func() tea.Msg {
		p, err := client.Product(ctx, id)
		return productLoadedMsg{seq: seq, product: p, err: err}
	}
}
