package store

import (
	"regexp"
	"testing"

	"enertek-backend-go/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffPhotoSets(t *testing.T) {
	toDelete, toAdd := diffPhotoSets([]string{"/a.png", "/b.png"}, []string{"/b.png", "/c.png"})
	assert.Equal(t, []string{"/a.png"}, toDelete)
	assert.Equal(t, []string{"/c.png"}, toAdd)

	toDelete, toAdd = diffPhotoSets(nil, []string{"/a.png"})
	assert.Empty(t, toDelete)
	assert.Equal(t, []string{"/a.png"}, toAdd)

	toDelete, toAdd = diffPhotoSets([]string{"/a.png"}, []string{"/a.png"})
	assert.Empty(t, toDelete)
	assert.Empty(t, toAdd)
}

func TestProductCreateReturnsGeneratedID(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO photos`)).
		WithArgs(int64(7), "Products", "/uploads/Products/x.png").
		WillReturnResult(sqlmock.NewResult(1, 1))

	item := &models.Product{Name: "Inverter", Photos: []string{"/uploads/Products/x.png"}}
	created, err := s.Products.Create(item, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "admin@example.com", created.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteRunsInTransaction(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM photos`)).
		WithArgs(int64(5), "Products").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, s.Products.Delete(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteRollsBackWhenReferenced(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM photos`)).
		WithArgs(int64(5), "Products").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "solution_products_product_id_fkey"})
	mock.ExpectRollback()

	err := s.Products.Delete(5)
	assert.ErrorIs(t, err, ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateReportsMissingRow(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := s.Products.Update(&models.Product{ID: 99, Name: "x"}, "admin")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferencedBySolution(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM solution_products WHERE product_id = $1)`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	referenced, err := s.Products.ReferencedBySolution(3)
	require.NoError(t, err)
	assert.True(t, referenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}
