package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct {
	db     *sqlx.DB
	photos *PhotoRepo
	store  *Store
}

const productColumns = `
p.id, p.name, p.description, p.price, p.category_id, c.name AS category_name,
p.created_at, p.created_by, p.updated_at, p.updated_by
`

func (r *ProductRepo) All(limit int) ([]models.Product, error) {
	items := []models.Product{}
	query := `
SELECT ` + productColumns + `
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
`
	args := []interface{}{}
	if limit > 0 {
		query += `LIMIT $1`
		args = append(args, limit)
	}
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	for i := range items {
		urls, err := r.photos.ForOwner(Owner{Kind: OwnerProducts, ID: items[i].ID})
		if err != nil {
			return nil, err
		}
		items[i].Photos = urls
	}
	return items, nil
}

func (r *ProductRepo) ByCategory(categoryID int64) ([]models.Product, error) {
	items := []models.Product{}
	err := r.db.Select(&items, `
SELECT `+productColumns+`
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
WHERE p.category_id = $1
`, categoryID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		urls, err := r.photos.ForOwner(Owner{Kind: OwnerProducts, ID: items[i].ID})
		if err != nil {
			return nil, err
		}
		items[i].Photos = urls
	}
	return items, nil
}

func (r *ProductRepo) ByID(id int64) (*models.Product, error) {
	var item models.Product
	err := r.db.Get(&item, `
SELECT `+productColumns+`
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
WHERE p.id = $1
`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	urls, err := r.photos.ForOwner(Owner{Kind: OwnerProducts, ID: item.ID})
	if err != nil {
		return nil, err
	}
	item.Photos = urls
	return &item, nil
}

// Create inserts the product row and then one photo row per url. The photo
// inserts run outside a transaction, matching the legacy write path.
func (r *ProductRepo) Create(item *models.Product, actor string) (*models.Product, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO products (name, description, price, category_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, item.Name, item.Description, item.Price, item.CategoryID, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	for _, url := range item.Photos {
		if err := addPhoto(r.db, Owner{Kind: OwnerProducts, ID: item.ID}, url); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Update writes the full row and then reconciles the stored photo set
// against item.Photos: urls only in storage are deleted, urls only in the
// new list are inserted, the intersection is left alone.
func (r *ProductRepo) Update(item *models.Product, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE products
SET name = $2, description = $3, price = $4, category_id = $5, updated_at = $6, updated_by = $7
WHERE id = $1
`, item.ID, item.Name, item.Description, item.Price, item.CategoryID, now, actor)
	if err != nil {
		return false, translate(err)
	}
	if !rowsAffected(res) {
		return false, nil
	}
	if err := r.reconcilePhotos(item.ID, item.Photos); err != nil {
		return true, err
	}
	item.UpdatedAt = &now
	item.UpdatedBy = &actor
	return true, nil
}

func (r *ProductRepo) reconcilePhotos(productID int64, desired []string) error {
	owner := Owner{Kind: OwnerProducts, ID: productID}
	stored, err := photosForOwner(r.db, owner)
	if err != nil {
		return err
	}
	toDelete, toAdd := diffPhotoSets(stored, desired)
	for _, url := range toDelete {
		if err := deletePhotoByURL(r.db, owner, url); err != nil {
			return err
		}
	}
	for _, url := range toAdd {
		if err := addPhoto(r.db, owner, url); err != nil {
			return err
		}
	}
	return nil
}

// diffPhotoSets returns the urls present only in stored and only in desired.
func diffPhotoSets(stored, desired []string) (toDelete, toAdd []string) {
	storedSet := make(map[string]bool, len(stored))
	for _, url := range stored {
		storedSet[url] = true
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, url := range desired {
		desiredSet[url] = true
	}
	for _, url := range stored {
		if !desiredSet[url] {
			toDelete = append(toDelete, url)
		}
	}
	for _, url := range desired {
		if !storedSet[url] {
			toAdd = append(toAdd, url)
		}
	}
	return toDelete, toAdd
}

// Delete removes the product's photo rows and the product itself in one
// transaction. A foreign key held by solution_products surfaces as
// ErrReferenced and leaves the row in place.
func (r *ProductRepo) Delete(id int64) error {
	return r.store.inTx(func(tx *sqlx.Tx) error {
		if err := deletePhotosForOwner(tx, Owner{Kind: OwnerProducts, ID: id}); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM products WHERE id = $1`, id)
		return translate(err)
	})
}

// ReferencedBySolution reports whether any solution still includes the
// product. Used by the service layer for the pre-delete conflict check.
func (r *ProductRepo) ReferencedBySolution(id int64) (bool, error) {
	var exists bool
	err := r.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM solution_products WHERE product_id = $1)`, id)
	return exists, err
}
