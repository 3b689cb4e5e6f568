package services

import (
	"errors"
	"fmt"
	"testing"

	"enertek-backend-go/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeFromDelete(t *testing.T) {
	ok := outcomeFromDelete(nil, "unused")
	assert.Equal(t, DeleteOK, ok.Kind)

	conflict := outcomeFromDelete(
		fmt.Errorf("%w: fk_solution_products_product", store.ErrReferenced),
		"Cannot delete product, solutions still reference it")
	assert.Equal(t, DeleteConflict, conflict.Kind)
	assert.Equal(t, "Cannot delete product, solutions still reference it", conflict.Reason)

	failed := outcomeFromDelete(errors.New("connection reset"), "unused")
	assert.Equal(t, DeleteFailed, failed.Kind)
	assert.Equal(t, "delete failed", failed.Reason)
}

func TestErrIsDuplicate(t *testing.T) {
	assert.True(t, errIsDuplicate(fmt.Errorf("%w: uq_pair", store.ErrDuplicate)))
	assert.False(t, errIsDuplicate(errors.New("other")))
	assert.False(t, errIsDuplicate(nil))
}
