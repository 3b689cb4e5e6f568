package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// TechnicalDocRepo handles the downloads catalog. The legacy td_id column is
// TEXT holding a numeric string, fed from a sequence; the quirk is kept.
type TechnicalDocRepo struct {
	db *sqlx.DB
}

const docColumns = `
d.td_id, d.name, d.file_path, d.td_category_id, oc.name AS category_name,
d.created_at, d.created_by, d.updated_at, d.updated_by
`

func (r *TechnicalDocRepo) All(limit int) ([]models.TechnicalDoc, error) {
	items := []models.TechnicalDoc{}
	query := `
SELECT ` + docColumns + `
FROM technical_documentations d
LEFT JOIN other_categories oc
  ON oc.category_id = d.td_category_id AND oc.category_type = 'TD'
`
	args := []interface{}{}
	if limit > 0 {
		query += `LIMIT $1`
		args = append(args, limit)
	}
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TechnicalDocRepo) ByID(id string) (*models.TechnicalDoc, error) {
	var item models.TechnicalDoc
	err := r.db.Get(&item, `
SELECT `+docColumns+`
FROM technical_documentations d
LEFT JOIN other_categories oc
  ON oc.category_id = d.td_category_id AND oc.category_type = 'TD'
WHERE d.td_id = $1
`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *TechnicalDocRepo) Create(item *models.TechnicalDoc, actor string) (*models.TechnicalDoc, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO technical_documentations (td_id, name, file_path, td_category_id, created_at, created_by)
VALUES (nextval('technical_documentations_td_id_seq')::text, $1, $2, $3, $4, $5)
RETURNING td_id
`, item.Name, item.FilePath, item.CategoryID, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *TechnicalDocRepo) Update(item *models.TechnicalDoc, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE technical_documentations
SET name = $2, file_path = $3, td_category_id = $4, updated_at = $5, updated_by = $6
WHERE td_id = $1
`, item.ID, item.Name, item.FilePath, item.CategoryID, now, actor)
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

func (r *TechnicalDocRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM technical_documentations WHERE td_id = $1`, id)
	return translate(err)
}

// OtherCategoryRepo manages the shared category table. Rows are addressed by
// (category_type, category_id); category_id values are only unique within a
// type.
type OtherCategoryRepo struct {
	db *sqlx.DB
}

const otherCategoryColumns = `category_id, category_type, name, created_at, created_by, updated_at, updated_by`

func (r *OtherCategoryRepo) ByType(categoryType string) ([]models.OtherCategory, error) {
	items := []models.OtherCategory{}
	err := r.db.Select(&items, `
SELECT `+otherCategoryColumns+` FROM other_categories WHERE category_type = $1
`, categoryType)
	return items, err
}

func (r *OtherCategoryRepo) ByKey(categoryType string, categoryID int64) (*models.OtherCategory, error) {
	var item models.OtherCategory
	err := r.db.Get(&item, `
SELECT `+otherCategoryColumns+`
FROM other_categories
WHERE category_type = $1 AND category_id = $2
`, categoryType, categoryID)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OtherCategoryRepo) Create(item *models.OtherCategory, actor string) (*models.OtherCategory, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.CategoryID, `
INSERT INTO other_categories (category_type, name, created_at, created_by)
VALUES ($1, $2, $3, $4)
RETURNING category_id
`, item.CategoryType, item.Name, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *OtherCategoryRepo) Update(item *models.OtherCategory, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE other_categories
SET name = $3, updated_at = $4, updated_by = $5
WHERE category_type = $1 AND category_id = $2
`, item.CategoryType, item.CategoryID, item.Name, now, actor)
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

func (r *OtherCategoryRepo) Delete(categoryType string, categoryID int64) error {
	_, err := r.db.Exec(`DELETE FROM other_categories WHERE category_type = $1 AND category_id = $2`,
		categoryType, categoryID)
	return translate(err)
}
