package services

import (
	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type CompanyService struct {
	store *store.Store
}

func NewCompanyService(s *store.Store) *CompanyService {
	return &CompanyService{store: s}
}

func (s *CompanyService) All() ([]models.CompanyInformation, error) {
	return s.store.Company.All()
}

func (s *CompanyService) Current() (*models.CompanyInformation, error) {
	return s.store.Company.First()
}

func (s *CompanyService) ByID(id int64) (*models.CompanyInformation, error) {
	return s.store.Company.ByID(id)
}

func (s *CompanyService) Create(item *models.CompanyInformation, actor string) (*models.CompanyInformation, error) {
	name, err := NormalizeRequired(item.Name, "Company name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	item.Name = name
	return s.store.Company.Create(item, actor)
}

func (s *CompanyService) Update(item *models.CompanyInformation, actor string) (bool, error) {
	name, err := NormalizeRequired(item.Name, "Company name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	item.Name = name
	return s.store.Company.Update(item, actor)
}

func (s *CompanyService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Company.Delete(id),
		"Cannot delete company information, records still reference it")
}
