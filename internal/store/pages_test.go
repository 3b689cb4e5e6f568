package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementVisitorsReturnsNewCount(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE pages SET visitor_count = visitor_count + 1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"visitor_count"}).AddRow(int64(12)))

	count, found, err := s.Pages.IncrementVisitors(4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementVisitorsMissingPage(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE pages SET visitor_count = visitor_count + 1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"visitor_count"}))

	_, found, err := s.Pages.IncrementVisitors(404)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
