package service

import (
	"context"
	"sync"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.Username] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) delete(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, username)
}

type stubResetRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.ResetToken
}

func newStubResetRepo() *stubResetRepo {
	return &stubResetRepo{tokens: make(map[string]*domain.ResetToken)}
}

func (r *stubResetRepo) Replace(_ context.Context, token *domain.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	r.tokens[token.Identifier] = &clone
	return nil
}

func (r *stubResetRepo) FindLive(_ context.Context, identifier string) (*domain.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[identifier]
	if !ok || t.Consumed {
		return nil, domain.ErrResetInvalid
	}
	clone := *t
	return &clone, nil
}

func (r *stubResetRepo) Consume(_ context.Context, identifier, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[identifier]
	if !ok || t.Consumed || t.Token != token {
		return domain.ErrResetInvalid
	}
	t.Consumed = true
	return nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type stubCatalogRepo struct {
	pages    map[string]*domain.Page
	products map[string]*domain.Product
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		pages:    make(map[string]*domain.Page),
		products: make(map[string]*domain.Product),
	}
}

func (r *stubCatalogRepo) GetPageBySlug(_ context.Context, slug string) (*domain.Page, error) {
	p, ok := r.pages[slug]
	if !ok {
		return nil, domain.ErrPageNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubCatalogRepo) GetProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	p, ok := r.products[slug]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubCatalogRepo) ListPages(_ context.Context, publishedOnly bool) ([]domain.Page, error) {
	var pages []domain.Page
	for _, p := range r.pages {
		if publishedOnly && !p.Published {
			continue
		}
		pages = append(pages, *p)
	}
	return pages, nil
}

type stubCartRepo struct {
	mu    sync.Mutex
	carts map[string]map[string]int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]map[string]int)}
}

func (r *stubCartRepo) AddItem(_ context.Context, cartID, productSlug string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.carts[cartID] == nil {
		r.carts[cartID] = make(map[string]int)
	}
	r.carts[cartID][productSlug] += quantity
	return nil
}

func (r *stubCartRepo) Items(_ context.Context, cartID string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make(map[string]int, len(r.carts[cartID]))
	for slug, qty := range r.carts[cartID] {
		items[slug] = qty
	}
	return items, nil
}

func (r *stubCartRepo) Clear(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

type stubNotifier struct {
	mu   sync.Mutex
	sent []ports.ResetNotification
}

func (n *stubNotifier) Enqueue(notification ports.ResetNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}
