package services

import (
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

// PlaceholderSlidePicture is served when a slide has no uploaded image.
const PlaceholderSlidePicture = "/uploads/Slides/placeholder.png"

type SlideService struct {
	store *store.Store
}

func NewSlideService(s *store.Store) *SlideService {
	return &SlideService{store: s}
}

func (s *SlideService) All(limit int) ([]models.Slide, error) {
	return s.store.Slides.All(limit)
}

func (s *SlideService) ByID(id int64) (*models.Slide, error) {
	return s.store.Slides.ByID(id)
}

func (s *SlideService) Create(item *models.Slide, actor string) (*models.Slide, error) {
	if err := normalizeSlide(item); err != nil {
		return nil, err
	}
	return s.store.Slides.Create(item, actor)
}

func (s *SlideService) Update(item *models.Slide, actor string) (bool, error) {
	if err := normalizeSlide(item); err != nil {
		return false, err
	}
	return s.store.Slides.Update(item, actor)
}

func (s *SlideService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Slides.Delete(id),
		"Cannot delete slide, records still reference it")
}

// normalizeSlide fills the placeholder picture and checks the optional owner
// association against the known kinds so a typo cannot orphan the slide.
func normalizeSlide(item *models.Slide) error {
	if strings.TrimSpace(item.PicturePath) == "" {
		item.PicturePath = PlaceholderSlidePicture
	}
	if item.EntityType == nil && item.EntityID == nil {
		return nil
	}
	if item.EntityType == nil || item.EntityID == nil {
		return ErrBadRequest("Both entityType and entityId are required for a slide link")
	}
	owner := store.Owner{Kind: store.OwnerKind(*item.EntityType), ID: *item.EntityID}
	if err := owner.Validate(); err != nil {
		return ErrBadRequest(err.Error())
	}
	return nil
}
