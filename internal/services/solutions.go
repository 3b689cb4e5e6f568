package services

import (
	"errors"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type SolutionService struct {
	store *store.Store
}

func NewSolutionService(s *store.Store) *SolutionService {
	return &SolutionService{store: s}
}

func (s *SolutionService) All(limit int) ([]models.Solution, error) {
	return s.store.Solutions.All(limit)
}

func (s *SolutionService) ByID(id int64) (*models.Solution, error) {
	return s.store.Solutions.ByID(id)
}

func (s *SolutionService) Create(item *models.Solution, actor string) (*models.Solution, error) {
	title, err := NormalizeRequired(item.Title, "Solution title is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	item.Title = title
	return s.store.Solutions.Create(item, actor)
}

func (s *SolutionService) Update(item *models.Solution, actor string) (bool, error) {
	title, err := NormalizeRequired(item.Title, "Solution title is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	item.Title = title
	return s.store.Solutions.Update(item, actor)
}

func (s *SolutionService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Solutions.Delete(id),
		"Cannot delete solution, records still reference it")
}

// AddProduct associates a product with a solution; the second call with the
// same pair fails with an already-associated business error.
func (s *SolutionService) AddProduct(solutionID, productID int64) error {
	solution, err := s.store.Solutions.ByID(solutionID)
	if err != nil {
		return WrapError(err, "lookup solution")
	}
	if solution == nil {
		return ErrNotFound("Solution not found")
	}
	product, err := s.store.Products.ByID(productID)
	if err != nil {
		return WrapError(err, "lookup product")
	}
	if product == nil {
		return ErrNotFound("Product not found")
	}
	if err := s.store.Solutions.AddProduct(solutionID, productID); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrBadRequest("Product is already associated with this solution")
		}
		return WrapError(err, "associate product")
	}
	return nil
}

func (s *SolutionService) RemoveProduct(solutionID, productID int64) error {
	removed, err := s.store.Solutions.RemoveProduct(solutionID, productID)
	if err != nil {
		return WrapError(err, "dissociate product")
	}
	if !removed {
		return ErrNotFound("Product is not associated with this solution")
	}
	return nil
}

func (s *SolutionService) AddPhoto(solutionID int64, url string) error {
	solution, err := s.store.Solutions.ByID(solutionID)
	if err != nil {
		return WrapError(err, "lookup solution")
	}
	if solution == nil {
		return ErrNotFound("Solution not found")
	}
	return s.store.Photos.Add(store.Owner{Kind: store.OwnerSolutions, ID: solutionID}, url)
}

// DeletePhoto removes every photo row carrying the url, regardless of owner.
func (s *SolutionService) DeletePhoto(url string) (int64, error) {
	return s.store.Photos.DeleteByURL(url)
}
