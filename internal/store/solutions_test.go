package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSolutionDeleteCascades(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM photos`)).
		WithArgs(int64(9), "Solutions").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM solution_products`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM solutions`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, s.Solutions.Delete(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionDeleteRollsBackMidCascade(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM photos`)).
		WithArgs(int64(9), "Solutions").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM solution_products`)).
		WithArgs(int64(9)).
		WillReturnError(&pgconn.PgError{Code: "57P01"})
	mock.ExpectRollback()

	assert.Error(t, s.Solutions.Delete(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddProductDuplicatePair(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO solution_products`)).
		WithArgs(int64(9), int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "solution_products_solution_id_product_id_key"})

	err := s.Solutions.AddProduct(9, 3)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveProductReportsMissingPair(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM solution_products`)).
		WithArgs(int64(9), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := s.Solutions.RemoveProduct(9, 3)
	assert.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
