package services

import (
	"testing"

	"enertek-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePage(t *testing.T) {
	item := &models.Page{Title: "  About us ", Slug: " about "}
	assert.NoError(t, validatePage(item))
	assert.Equal(t, "About us", item.Title)
	assert.Equal(t, "about", item.Slug)
	assert.Equal(t, models.PageDraft, item.Status)

	item = &models.Page{Title: "About", Slug: "about", Status: models.PagePublished}
	assert.NoError(t, validatePage(item))
	assert.Equal(t, models.PagePublished, item.Status)
}

func TestValidatePageRejectsBadInput(t *testing.T) {
	assert.Error(t, validatePage(&models.Page{Slug: "about"}))
	assert.Error(t, validatePage(&models.Page{Title: "About"}))
	assert.Error(t, validatePage(&models.Page{Title: "About", Slug: "about", Status: "Hidden"}))
}
