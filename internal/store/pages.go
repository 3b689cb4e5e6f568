package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type PageRepo struct {
	db *sqlx.DB
}

const pageColumns = `id, title, slug, content, status, visitor_count, created_at, created_by, updated_at, updated_by`

func (r *PageRepo) All(limit int) ([]models.Page, error) {
	items := []models.Page{}
	query := `SELECT ` + pageColumns + ` FROM pages`
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

func (r *PageRepo) ByID(id int64) (*models.Page, error) {
	var item models.Page
	err := r.db.Get(&item, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// BySlug returns the first page carrying the slug. Slug uniqueness is not
// enforced anywhere, so duplicates resolve to an arbitrary row.
func (r *PageRepo) BySlug(slug string) (*models.Page, error) {
	var item models.Page
	err := r.db.Get(&item, `SELECT `+pageColumns+` FROM pages WHERE slug = $1 LIMIT 1`, slug)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PageRepo) Create(item *models.Page, actor string) (*models.Page, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO pages (title, slug, content, status, visitor_count, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`, item.Title, item.Slug, item.Content, string(item.Status), item.VisitorCount, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *PageRepo) Update(item *models.Page, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE pages
SET title = $2, slug = $3, content = $4, status = $5, updated_at = $6, updated_by = $7
WHERE id = $1
`, item.ID, item.Title, item.Slug, item.Content, string(item.Status), now, actor)
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

func (r *PageRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	return translate(err)
}

// IncrementVisitors bumps the page's visitor counter and returns the new
// total, or false when the page is gone.
func (r *PageRepo) IncrementVisitors(id int64) (int64, bool, error) {
	var count int64
	err := r.db.Get(&count, `
UPDATE pages SET visitor_count = visitor_count + 1 WHERE id = $1
RETURNING visitor_count
`, id)
	if noRows(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}
