package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	db := sqlx.NewDb(mockDB, "pgx")
	return New(db), mock
}

func TestTranslateConstraintViolations(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_solution_products_product"}
	assert.True(t, errors.Is(translate(fk), ErrReferenced))

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_solution_products"}
	assert.True(t, errors.Is(translate(unique), ErrDuplicate))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translate(plain))

	assert.NoError(t, translate(nil))
}

func TestOwnerValidate(t *testing.T) {
	assert.NoError(t, Owner{Kind: OwnerProducts, ID: 1}.Validate())
	assert.Error(t, Owner{Kind: "Widgets", ID: 1}.Validate())
	assert.Error(t, Owner{Kind: OwnerNews, ID: 0}.Validate())
}

func TestInTxRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := s.inTx(func(tx *sqlx.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTxCommits(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := s.inTx(func(tx *sqlx.Tx) error { return nil })
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
