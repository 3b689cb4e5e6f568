package services

import (
	"testing"
	"time"

	"enertek-backend-go/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicalDocUpdateRejectsUnknownCategory(t *testing.T) {
	st, mock := newTestStore(t)
	svc := NewTechnicalDocService(st)
	mock.ExpectQuery(`FROM other_categories`).
		WithArgs("TD", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_type", "name"}))

	categoryID := int64(4)
	_, err := svc.Update(&models.TechnicalDoc{ID: "12", Name: "Datasheet", CategoryID: &categoryID}, "system")
	var svcErr ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.Equal(t, "Document category does not exist", svcErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTechnicalDocUpdateAcceptsExistingCategory(t *testing.T) {
	st, mock := newTestStore(t)
	svc := NewTechnicalDocService(st)
	now := time.Now().UTC()
	mock.ExpectQuery(`FROM other_categories`).
		WithArgs("TD", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_type", "name", "created_at", "created_by"}).
			AddRow(int64(4), "TD", "Manuals", now, "system"))
	mock.ExpectExec(`UPDATE technical_documentations`).
		WithArgs("12", "Datasheet", nil, int64(4), sqlmock.AnyArg(), "system").
		WillReturnResult(sqlmock.NewResult(0, 1))

	categoryID := int64(4)
	updated, err := svc.Update(&models.TechnicalDoc{ID: "12", Name: "Datasheet", CategoryID: &categoryID}, "system")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
