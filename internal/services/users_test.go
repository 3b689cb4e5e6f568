package services

import (
	"regexp"
	"testing"
	"time"

	"enertek-backend-go/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	st := store.New(sqlx.NewDb(mockDB, "pgx"))
	return NewUserService(st, testTokens()), mock
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc, mock := newUserService(t)

	_, err := svc.Register(Credentials{Email: "a@example.com", Password: "secret1!"}, "system")
	assert.Error(t, err, "missing full name")

	_, err = svc.Register(Credentials{FullName: "Ana", Email: "not-an-email", Password: "secret1!"}, "system")
	assert.Error(t, err, "invalid email")

	_, err = svc.Register(Credentials{FullName: "Ana", Email: "a@example.com", Password: "short1"}, "system")
	assert.Error(t, err, "weak password")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, mock := newUserService(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users`)).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := svc.Register(Credentials{FullName: "Ana", Email: "Taken@Example.com", Password: "secret1!"}, "system")
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.Equal(t, "Email already in use", svcErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterAlwaysAssignsUserRole(t *testing.T) {
	svc, mock := newUserService(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users`)).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM roles`)).
		WithArgs("User").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "User"))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ana", "ana@example.com", sqlmock.AnyArg(), int64(2), sqlmock.AnyArg(), "system").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	user, err := svc.Register(Credentials{FullName: "Ana", Email: "ana@example.com", Password: "secret1!"}, "system")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.RoleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterFailsWithoutSeededUserRole(t *testing.T) {
	svc, mock := newUserService(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users`)).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM roles`)).
		WithArgs("User").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Register(Credentials{FullName: "Ana", Email: "ana@example.com", Password: "secret1!"}, "system")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newUserService(t)
	mock.ExpectQuery(`FROM users u`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login("nobody@example.com", "whatever1!")
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 401, svcErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesTokenWithRoleClaim(t *testing.T) {
	svc, mock := newUserService(t)
	tokens := testTokens()
	hash, err := tokens.HashPassword("secret1!")
	require.NoError(t, err)

	role := "Admin"
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "password_hash", "role_id", "role_name",
		"created_at", "created_by", "updated_at", "updated_by",
	}).AddRow(int64(7), "Ana Popescu", "ana@example.com", hash, int64(1), role,
		time.Now().UTC(), "system", nil, nil)
	mock.ExpectQuery(`FROM users u`).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	result, err := svc.Login("Ana@Example.com", "secret1!")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, int64(7), result.User.ID)

	_, claims, err := tokens.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims["role"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newUserService(t)
	hash, err := testTokens().HashPassword("secret1!")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "password_hash", "role_id", "role_name",
		"created_at", "created_by", "updated_at", "updated_by",
	}).AddRow(int64(7), "Ana", "ana@example.com", hash, int64(1), "User",
		time.Now().UTC(), "system", nil, nil)
	mock.ExpectQuery(`FROM users u`).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	_, err = svc.Login("ana@example.com", "wrong-pass1!")
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 401, svcErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
