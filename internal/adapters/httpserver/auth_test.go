package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tele1/storefront/internal/domain"
)

// stubUserRepo serves a single fixed user for session verification.
type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (s *stubUserRepo) First(ctx context.Context) (*domain.User, error) { return s.user, nil }
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, domain.ErrNotFound
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, domain.ErrNotFound
}
func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }
func (s *stubUserRepo) Update(ctx context.Context, u *domain.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }

func TestTokenRoundTrip(t *testing.T) {
	srv := &Server{jwtSecret: []byte("test-secret")}
	u := &domain.User{ID: uuid.New(), Username: "root", Role: domain.RoleSuperAdmin}

	tok, err := srv.issueToken(u)
	require.NoError(t, err)

	id, err := srv.verifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	issuer := &Server{jwtSecret: []byte("secret-a")}
	verifier := &Server{jwtSecret: []byte("secret-b")}

	tok, err := issuer.issueToken(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.verifyToken(tok)
	assert.Error(t, err)
}

func TestReadToken_BearerWinsOverCookie(t *testing.T) {
	srv := &Server{}

	r := httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: "cookie-token"})

	assert.Equal(t, "header-token", srv.readToken(r))

	r = httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: "cookie-token"})
	assert.Equal(t, "cookie-token", srv.readToken(r))
}

func TestRequireSession_ReloadsUserCapabilities(t *testing.T) {
	u := &domain.User{ID: uuid.New(), Username: "staff", Role: domain.RoleAdmin}
	srv := &Server{jwtSecret: []byte("test-secret"), users: &stubUserRepo{user: u}}

	tok, err := srv.issueToken(u)
	require.NoError(t, err)

	// Flag flipped after the token was minted still shows up in the session.
	u.CanManageProducts = true

	r := httptest.NewRequest(http.MethodGet, "/admin/api/products", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	sess, ok := srv.requireSession(w, r)
	require.True(t, ok)
	assert.Equal(t, u.ID, sess.UserID)
	assert.True(t, sess.CanManageProducts)
}

func TestRequireSession_UnknownUserRejected(t *testing.T) {
	srv := &Server{jwtSecret: []byte("test-secret"), users: &stubUserRepo{}}

	tok, err := srv.issueToken(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/api/products", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	_, ok := srv.requireSession(w, r)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
