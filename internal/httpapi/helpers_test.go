package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"enertek-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func requestWithParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestParseID(t *testing.T) {
	id, ok := parseID(requestWithParam("id", "42"), "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = parseID(requestWithParam("id", "abc"), "id")
	assert.False(t, ok)

	_, ok = parseID(requestWithParam("id", "0"), "id")
	assert.False(t, ok)

	_, ok = parseID(requestWithParam("id", "-3"), "id")
	assert.False(t, ok)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 25, parseLimit(requestWithParam("limit", "25")))
	assert.Equal(t, 0, parseLimit(requestWithParam("limit", "")))
	assert.Equal(t, 0, parseLimit(requestWithParam("limit", "-1")))
	assert.Equal(t, 0, parseLimit(requestWithParam("limit", "abc")))
}

func TestWriteDeleteOutcome(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDeleteOutcome(rec, services.DeleteOutcome{Kind: services.DeleteOK})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	writeDeleteOutcome(rec, services.DeleteOutcome{
		Kind:   services.DeleteConflict,
		Reason: "Cannot delete product, solutions still reference it",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "solutions still reference it")

	rec = httptest.NewRecorder()
	writeDeleteOutcome(rec, services.DeleteOutcome{Kind: services.DeleteFailed, Reason: "delete failed"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, services.ErrNotFound("Product not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	writeServiceError(rec, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
