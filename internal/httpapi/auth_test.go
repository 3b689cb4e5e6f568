package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enertek-backend-go/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() services.TokenService {
	return services.TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "enertek",
		Audience: "enertek-web",
		TTL:      time.Hour,
	}
}

func authedRequest(t *testing.T, tokens services.TokenService, role string) *http.Request {
	t.Helper()
	signed, _, err := tokens.CreateToken(7, "Ana Popescu", "ana@example.com", role)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	return req
}

func TestWithAuthPopulatesIdentity(t *testing.T) {
	tokens := testTokenService()
	var gotID int64
	var gotActor, gotRole string
	handler := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = CurrentUserID(r)
		gotActor = CurrentActor(r)
		gotRole = CurrentRole(r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, tokens, "Admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, "Ana Popescu", gotActor)
	assert.Equal(t, "Admin", gotRole)
}

func TestWithAuthRejectsMissingHeader(t *testing.T) {
	handler := WithAuth(testTokenService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsForeignToken(t *testing.T) {
	other := testTokenService()
	other.Secret = []byte("different-secret")
	handler := WithAuth(testTokenService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, other, "Admin"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens := testTokenService()
	called := false
	handler := WithAuth(tokens)(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, tokens, "User"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, tokens, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestCurrentActorFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "system", CurrentActor(req))
}
