package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type SolutionRepo struct {
	db     *sqlx.DB
	photos *PhotoRepo
	store  *Store
}

const solutionColumns = `id, title, description, main_picture, created_at, created_by, updated_at, updated_by`

func (r *SolutionRepo) All(limit int) ([]models.Solution, error) {
	items := []models.Solution{}
	query := `SELECT ` + solutionColumns + ` FROM solutions`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	for i := range items {
		if err := r.attachRelated(&items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *SolutionRepo) ByID(id int64) (*models.Solution, error) {
	var item models.Solution
	err := r.db.Get(&item, `SELECT `+solutionColumns+` FROM solutions WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachRelated(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SolutionRepo) attachRelated(item *models.Solution) error {
	urls, err := r.photos.ForOwner(Owner{Kind: OwnerSolutions, ID: item.ID})
	if err != nil {
		return err
	}
	item.Photos = urls
	products, err := r.ProductsFor(item.ID)
	if err != nil {
		return err
	}
	item.Products = products
	return nil
}

func (r *SolutionRepo) Create(item *models.Solution, actor string) (*models.Solution, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO solutions (title, description, main_picture, created_at, created_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, item.Title, item.Description, item.MainPicture, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	for _, url := range item.Photos {
		if err := addPhoto(r.db, Owner{Kind: OwnerSolutions, ID: item.ID}, url); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *SolutionRepo) Update(item *models.Solution, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE solutions
SET title = $2, description = $3, main_picture = $4, updated_at = $5, updated_by = $6
WHERE id = $1
`, item.ID, item.Title, item.Description, item.MainPicture, now, actor)
	if err != nil {
		return false, translate(err)
	}
	if !rowsAffected(res) {
		return false, nil
	}
	item.UpdatedAt = &now
	item.UpdatedBy = &actor
	return true, nil
}

// Delete removes the solution's photo rows, its product associations and the
// solution itself inside one transaction; any failure rolls the whole
// cascade back.
func (r *SolutionRepo) Delete(id int64) error {
	return r.store.inTx(func(tx *sqlx.Tx) error {
		if err := deletePhotosForOwner(tx, Owner{Kind: OwnerSolutions, ID: id}); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM solution_products WHERE solution_id = $1`, id); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(`DELETE FROM solutions WHERE id = $1`, id)
		return translate(err)
	})
}

func (r *SolutionRepo) ProductsFor(solutionID int64) ([]models.SolutionProduct, error) {
	items := []models.SolutionProduct{}
	err := r.db.Select(&items, `
SELECT sp.solution_id, sp.product_id, p.name AS product_name
FROM solution_products sp
LEFT JOIN products p ON p.id = sp.product_id
WHERE sp.solution_id = $1
`, solutionID)
	return items, err
}

// AddProduct associates a product with a solution. A duplicate pair trips
// the unique constraint and comes back as ErrDuplicate.
func (r *SolutionRepo) AddProduct(solutionID, productID int64) error {
	_, err := r.db.Exec(`INSERT INTO solution_products (solution_id, product_id) VALUES ($1, $2)`,
		solutionID, productID)
	return translate(err)
}

func (r *SolutionRepo) RemoveProduct(solutionID, productID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM solution_products WHERE solution_id = $1 AND product_id = $2`,
		solutionID, productID)
	if err != nil {
		return false, translate(err)
	}
	return rowsAffected(res), nil
}
