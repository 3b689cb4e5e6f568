package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct {
	db *sqlx.DB
}

func (r *CategoryRepo) All(limit int) ([]models.Category, error) {
	items := []models.Category{}
	query := `SELECT id, name, description, created_at, created_by, updated_at, updated_by FROM categories`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoryRepo) ByID(id int64) (*models.Category, error) {
	var item models.Category
	err := r.db.Get(&item, `
SELECT id, name, description, created_at, created_by, updated_at, updated_by
FROM categories
WHERE id = $1
`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CategoryRepo) Create(item *models.Category, actor string) (*models.Category, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO categories (name, description, created_at, created_by)
VALUES ($1, $2, $3, $4)
RETURNING id
`, item.Name, item.Description, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *CategoryRepo) Update(item *models.Category, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE categories
SET name = $2, description = $3, updated_at = $4, updated_by = $5
WHERE id = $1
`, item.ID, item.Name, item.Description, now, actor)
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

func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return translate(err)
}
