package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type NewsRepo struct {
	db     *sqlx.DB
	photos *PhotoRepo
	store  *Store
}

const newsColumns = `id, title, content, author, category_id, created_at, created_by, updated_at, updated_by`

func (r *NewsRepo) All(limit int) ([]models.News, error) {
	items := []models.News{}
	query := `SELECT ` + newsColumns + ` FROM news`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	if err := r.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	for i := range items {
		urls, err := r.photos.ForOwner(Owner{Kind: OwnerNews, ID: items[i].ID})
		if err != nil {
			return nil, err
		}
		items[i].Photos = urls
	}
	return items, nil
}

func (r *NewsRepo) ByID(id int64) (*models.News, error) {
	var item models.News
	err := r.db.Get(&item, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	urls, err := r.photos.ForOwner(Owner{Kind: OwnerNews, ID: item.ID})
	if err != nil {
		return nil, err
	}
	item.Photos = urls
	return &item, nil
}

func (r *NewsRepo) Create(item *models.News, actor string) (*models.News, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO news (title, content, author, category_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, item.Title, item.Content, item.Author, item.CategoryID, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	for _, url := range item.Photos {
		if err := addPhoto(r.db, Owner{Kind: OwnerNews, ID: item.ID}, url); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *NewsRepo) Update(item *models.News, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE news
SET title = $2, content = $3, author = $4, category_id = $5, updated_at = $6, updated_by = $7
WHERE id = $1
`, item.ID, item.Title, item.Content, item.Author, item.CategoryID, now, actor)
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

// Delete removes the article's photo rows and the article in one transaction.
func (r *NewsRepo) Delete(id int64) error {
	return r.store.inTx(func(tx *sqlx.Tx) error {
		if err := deletePhotosForOwner(tx, Owner{Kind: OwnerNews, ID: id}); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM news WHERE id = $1`, id)
		return translate(err)
	})
}
