package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type ContactRepo struct {
	db *sqlx.DB
}

const contactColumns = `id, first_name, last_name, company, email, phone, message, created_at, created_by, updated_at, updated_by`

func (r *ContactRepo) All(limit int) ([]models.ContactMessage, error) {
	items := []models.ContactMessage{}
	query := `SELECT ` + contactColumns + ` FROM contact_messages`
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

func (r *ContactRepo) ByID(id int64) (*models.ContactMessage, error) {
	var item models.ContactMessage
	err := r.db.Get(&item, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContactRepo) Create(item *models.ContactMessage, actor string) (*models.ContactMessage, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO contact_messages (first_name, last_name, company, email, phone, message, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`, item.FirstName, item.LastName, item.Company, item.Email, item.Phone, item.Message, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *ContactRepo) Update(item *models.ContactMessage, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE contact_messages
SET first_name = $2, last_name = $3, company = $4, email = $5, phone = $6, message = $7, updated_at = $8, updated_by = $9
WHERE id = $1
`, item.ID, item.FirstName, item.LastName, item.Company, item.Email, item.Phone, item.Message, now, actor)
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

func (r *ContactRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	return translate(err)
}
