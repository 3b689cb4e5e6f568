package services

import (
	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type PageService struct {
	store *store.Store
}

func NewPageService(s *store.Store) *PageService {
	return &PageService{store: s}
}

func (s *PageService) All(limit int) ([]models.Page, error) {
	return s.store.Pages.All(limit)
}

func (s *PageService) ByID(id int64) (*models.Page, error) {
	return s.store.Pages.ByID(id)
}

func (s *PageService) BySlug(slug string) (*models.Page, error) {
	return s.store.Pages.BySlug(slug)
}

func (s *PageService) Create(item *models.Page, actor string) (*models.Page, error) {
	if err := validatePage(item); err != nil {
		return nil, err
	}
	return s.store.Pages.Create(item, actor)
}

func (s *PageService) Update(item *models.Page, actor string) (bool, error) {
	if err := validatePage(item); err != nil {
		return false, err
	}
	return s.store.Pages.Update(item, actor)
}

func (s *PageService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Pages.Delete(id),
		"Cannot delete page, records still reference it")
}

// RecordVisit bumps the visitor counter; false means the page is gone.
func (s *PageService) RecordVisit(id int64) (int64, bool, error) {
	return s.store.Pages.IncrementVisitors(id)
}

func validatePage(item *models.Page) error {
	title, err := NormalizeRequired(item.Title, "Page title is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	slug, err := NormalizeRequired(item.Slug, "Page slug is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	if item.Status == "" {
		item.Status = models.PageDraft
	}
	if !item.Status.Valid() {
		return ErrBadRequest("Status must be Draft, Published or Archived")
	}
	item.Title = title
	item.Slug = slug
	return nil
}
