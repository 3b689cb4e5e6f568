package services

import (
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type TechnicalDocService struct {
	store *store.Store
}

func NewTechnicalDocService(s *store.Store) *TechnicalDocService {
	return &TechnicalDocService{store: s}
}

func (s *TechnicalDocService) All(limit int) ([]models.TechnicalDoc, error) {
	return s.store.TechnicalDocs.All(limit)
}

func (s *TechnicalDocService) ByID(id string) (*models.TechnicalDoc, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	return s.store.TechnicalDocs.ByID(id)
}

func (s *TechnicalDocService) Create(item *models.TechnicalDoc, actor string) (*models.TechnicalDoc, error) {
	name, err := NormalizeRequired(item.Name, "Document name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	item.Name = name
	if item.CategoryID != nil {
		category, err := s.store.OtherCategories.ByKey("TD", *item.CategoryID)
		if err != nil {
			return nil, WrapError(err, "lookup category")
		}
		if category == nil {
			return nil, ErrBadRequest("Document category does not exist")
		}
	}
	return s.store.TechnicalDocs.Create(item, actor)
}

func (s *TechnicalDocService) Update(item *models.TechnicalDoc, actor string) (bool, error) {
	name, err := NormalizeRequired(item.Name, "Document name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	item.Name = name
	if item.CategoryID != nil {
		category, err := s.store.OtherCategories.ByKey("TD", *item.CategoryID)
		if err != nil {
			return false, WrapError(err, "lookup category")
		}
		if category == nil {
			return false, ErrBadRequest("Document category does not exist")
		}
	}
	return s.store.TechnicalDocs.Update(item, actor)
}

func (s *TechnicalDocService) Delete(id string) DeleteOutcome {
	return outcomeFromDelete(s.store.TechnicalDocs.Delete(id),
		"Cannot delete document, records still reference it")
}

type OtherCategoryService struct {
	store *store.Store
}

func NewOtherCategoryService(s *store.Store) *OtherCategoryService {
	return &OtherCategoryService{store: s}
}

func (s *OtherCategoryService) ByType(categoryType string) ([]models.OtherCategory, error) {
	return s.store.OtherCategories.ByType(categoryType)
}

func (s *OtherCategoryService) ByKey(categoryType string, categoryID int64) (*models.OtherCategory, error) {
	return s.store.OtherCategories.ByKey(categoryType, categoryID)
}

func (s *OtherCategoryService) Create(item *models.OtherCategory, actor string) (*models.OtherCategory, error) {
	name, err := NormalizeRequired(item.Name, "Category name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	categoryType, err := NormalizeRequired(item.CategoryType, "Category type is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	item.Name = name
	item.CategoryType = categoryType
	return s.store.OtherCategories.Create(item, actor)
}

func (s *OtherCategoryService) Update(item *models.OtherCategory, actor string) (bool, error) {
	name, err := NormalizeRequired(item.Name, "Category name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	item.Name = name
	return s.store.OtherCategories.Update(item, actor)
}

func (s *OtherCategoryService) Delete(categoryType string, categoryID int64) DeleteOutcome {
	return outcomeFromDelete(s.store.OtherCategories.Delete(categoryType, categoryID),
		"Cannot delete category, records still reference it")
}
