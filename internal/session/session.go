// Package session holds the authenticated state of the storefront: the
// opaque login token plus the user profile, cart, and catalog fetched
// right after authentication.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vitrine/internal/fakestore"
)

// DefaultUserID is the profile loaded after login. The login endpoint
// returns only a token and no user identifier, so the downstream id is
// fixed; this mirrors the upstream behavior deliberately.
const DefaultUserID = 1

// API is the slice of the store client the loader needs.
type API interface {
	User(ctx context.Context, id int) (fakestore.User, error)
	CartsByUser(ctx context.Context, id int) ([]fakestore.Cart, error)
	Products(ctx context.Context) ([]fakestore.Product, error)
}

// Session is everything the authenticated views render from. Cart is nil
// when the user owns no carts; presence of Token is the sole auth signal.
type Session struct {
	Token    string
	User     fakestore.User
	Cart     *fakestore.Cart
	Products []fakestore.Product
}

// Loader performs the post-login data load.
type Loader struct {
	api    API
	userID int
	logger *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithUserID overrides the fixed profile id.
func WithUserID(id int) LoaderOption {
	return func(l *Loader) { l.userID = id }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a loader over the given API.
func NewLoader(api API, opts ...LoaderOption) *Loader {
	l := &Loader{
		api:    api,
		userID: DefaultUserID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the user profile, the user's carts, and the full catalog
// concurrently and joins them. Nothing is exposed until all three settle;
// any failure fails the whole load and cancels the siblings.
func (l *Loader) Load(ctx context.Context, token string) (*Session, error) {
	var (
		user     fakestore.User
		carts    []fakestore.Cart
		products []fakestore.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = l.api.User(ctx, l.userID)
		if err != nil {
			return fmt.Errorf("load user %d: %w", l.userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		carts, err = l.api.CartsByUser(ctx, l.userID)
		if err != nil {
			return fmt.Errorf("load carts for user %d: %w", l.userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = l.api.Products(ctx)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Warn("session load failed", zap.Error(err))
		return nil, err
	}

	s := &Session{
		Token:    token,
		User:     user,
		Products: products,
	}
	// The API returns a list of carts; only the first is shown. A user
	// with no carts simply has no cart.
	if len(carts) > 0 {
		cart := carts[0]
		s.Cart = &cart
	}

	l.logger.Info("session loaded",
		zap.Int("user_id", user.ID),
		zap.Int("products", len(products)),
		zap.Bool("has_cart", s.Cart != nil))
	return s, nil
}
