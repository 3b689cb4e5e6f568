package services

import (
	"regexp"
	"testing"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return store.New(sqlx.NewDb(mockDB, "pgx")), mock
}

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	st, mock := newTestStore(t)
	svc := NewProductService(st)

	_, err := svc.Create(&models.Product{Name: "Panel", Price: -1}, "admin")
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteConflictsWhileReferenced(t *testing.T) {
	st, mock := newTestStore(t)
	svc := NewProductService(st)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM solution_products`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	outcome := svc.Delete(3)
	assert.Equal(t, DeleteConflict, outcome.Kind)
	assert.Equal(t, "Cannot delete product, solutions still reference it", outcome.Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteCascadesWhenUnreferenced(t *testing.T) {
	st, mock := newTestStore(t)
	svc := NewProductService(st)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM solution_products`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM photos`)).
		WithArgs(int64(3), "Products").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome := svc.Delete(3)
	assert.Equal(t, DeleteOK, outcome.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreateRequiresName(t *testing.T) {
	st, _ := newTestStore(t)
	svc := NewCategoryService(st)

	_, err := svc.Create(&models.Category{Name: "   "}, "admin")
	assert.Error(t, err)
}
