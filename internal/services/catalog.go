package services

import (
	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type CategoryService struct {
	store *store.Store
}

func NewCategoryService(s *store.Store) *CategoryService {
	return &CategoryService{store: s}
}

func (s *CategoryService) All(limit int) ([]models.Category, error) {
	return s.store.Categories.All(limit)
}

func (s *CategoryService) ByID(id int64) (*models.Category, error) {
	return s.store.Categories.ByID(id)
}

func (s *CategoryService) Create(item *models.Category, actor string) (*models.Category, error) {
	name, err := NormalizeRequired(item.Name, "Category name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	item.Name = name
	return s.store.Categories.Create(item, actor)
}

func (s *CategoryService) Update(item *models.Category, actor string) (bool, error) {
	name, err := NormalizeRequired(item.Name, "Category name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	item.Name = name
	return s.store.Categories.Update(item, actor)
}

func (s *CategoryService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Categories.Delete(id),
		"Cannot delete category, products still reference it")
}

type ProductService struct {
	store *store.Store
}

func NewProductService(s *store.Store) *ProductService {
	return &ProductService{store: s}
}

func (s *ProductService) All(limit int) ([]models.Product, error) {
	return s.store.Products.All(limit)
}

func (s *ProductService) ByCategory(categoryID int64) ([]models.Product, error) {
	return s.store.Products.ByCategory(categoryID)
}

func (s *ProductService) ByID(id int64) (*models.Product, error) {
	return s.store.Products.ByID(id)
}

func (s *ProductService) Create(item *models.Product, actor string) (*models.Product, error) {
	name, err := NormalizeRequired(item.Name, "Product name is required")
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	if item.Price < 0 {
		return nil, ErrBadRequest("Price must not be negative")
	}
	item.Name = name
	return s.store.Products.Create(item, actor)
}

func (s *ProductService) Update(item *models.Product, actor string) (bool, error) {
	name, err := NormalizeRequired(item.Name, "Product name is required")
	if err != nil {
		return false, ErrBadRequest(err.Error())
	}
	if item.Price < 0 {
		return false, ErrBadRequest("Price must not be negative")
	}
	item.Name = name
	return s.store.Products.Update(item, actor)
}

// Delete refuses to remove a product a solution still includes; the check
// runs up front so the common case reads as a conflict, and the FK
// constraint backstops the race.
func (s *ProductService) Delete(id int64) DeleteOutcome {
	referenced, err := s.store.Products.ReferencedBySolution(id)
	if err != nil {
		return deleteFailed("delete failed")
	}
	if referenced {
		return deleteConflict("Cannot delete product, solutions still reference it")
	}
	return outcomeFromDelete(s.store.Products.Delete(id),
		"Cannot delete product, solutions still reference it")
}

func (s *ProductService) AddPhoto(productID int64, url string) error {
	product, err := s.store.Products.ByID(productID)
	if err != nil {
		return WrapError(err, "lookup product")
	}
	if product == nil {
		return ErrNotFound("Product not found")
	}
	return s.store.Photos.Add(store.Owner{Kind: store.OwnerProducts, ID: productID}, url)
}
