package services

import (
	"testing"

	"enertek-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestNormalizeSlideFillsPlaceholder(t *testing.T) {
	item := &models.Slide{}
	assert.NoError(t, normalizeSlide(item))
	assert.Equal(t, PlaceholderSlidePicture, item.PicturePath)

	item = &models.Slide{PicturePath: "/uploads/Slides/x.png"}
	assert.NoError(t, normalizeSlide(item))
	assert.Equal(t, "/uploads/Slides/x.png", item.PicturePath)
}

func TestNormalizeSlideOwnerPair(t *testing.T) {
	valid := &models.Slide{EntityType: strPtr("Products"), EntityID: int64Ptr(3)}
	assert.NoError(t, normalizeSlide(valid))

	halfSet := &models.Slide{EntityType: strPtr("Products")}
	assert.Error(t, normalizeSlide(halfSet))

	unknownKind := &models.Slide{EntityType: strPtr("Widgets"), EntityID: int64Ptr(3)}
	assert.Error(t, normalizeSlide(unknownKind))

	badID := &models.Slide{EntityType: strPtr("News"), EntityID: int64Ptr(0)}
	assert.Error(t, normalizeSlide(badID))
}
