package httpapi

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"enertek-backend-go/internal/config"
	"enertek-backend-go/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	cfg := config.Config{
		JWTSecret:       "test-secret",
		JWTIssuer:       "enertek",
		JWTAudience:     "enertek-web",
		TokenTTLSeconds: 3600,
		UploadRoot:      t.TempDir(),
		MaxUploadBytes:  1 << 20,
	}
	return NewServer(sqlx.NewDb(mockDB, "pgx"), cfg, services.NewMetricsHub()), mock
}

func TestRegisterIgnoresCallerSuppliedRole(t *testing.T) {
	srv, mock := newTestServer(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users`)).
		WithArgs("eve@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM roles`)).
		WithArgs("User").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "User"))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Eve", "eve@example.com", sqlmock.AnyArg(), int64(2), sqlmock.AnyArg(), "eve@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	// roleId in the payload must not reach the insert.
	body := `{"fullName":"Eve","email":"eve@example.com","password":"secret1!","roleId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
