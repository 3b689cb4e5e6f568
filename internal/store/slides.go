package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type SlideRepo struct {
	db *sqlx.DB
}

const slideColumns = `id, description, picture_path, entity_type, entity_id, created_at, created_by, updated_at, updated_by`

func (r *SlideRepo) All(limit int) ([]models.Slide, error) {
	items := []models.Slide{}
	query := `SELECT ` + slideColumns + ` FROM slides`
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

func (r *SlideRepo) ByID(id int64) (*models.Slide, error) {
	var item models.Slide
	err := r.db.Get(&item, `SELECT `+slideColumns+` FROM slides WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SlideRepo) Create(item *models.Slide, actor string) (*models.Slide, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO slides (description, picture_path, entity_type, entity_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, item.Description, item.PicturePath, item.EntityType, item.EntityID, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *SlideRepo) Update(item *models.Slide, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE slides
SET description = $2, picture_path = $3, entity_type = $4, entity_id = $5, updated_at = $6, updated_by = $7
WHERE id = $1
`, item.ID, item.Description, item.PicturePath, item.EntityType, item.EntityID, now, actor)
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

func (r *SlideRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM slides WHERE id = $1`, id)
	return translate(err)
}
