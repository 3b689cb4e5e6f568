package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// CompanyRepo manages the company profile. Nothing enforces a single row,
// but First is what the public site reads.
type CompanyRepo struct {
	db *sqlx.DB
}

const companyColumns = `
id, name, about, address, email, phone, map_embed_url, facebook, instagram, linkedin,
created_at, created_by, updated_at, updated_by
`

func (r *CompanyRepo) All() ([]models.CompanyInformation, error) {
	items := []models.CompanyInformation{}
	err := r.db.Select(&items, `SELECT `+companyColumns+` FROM company_information`)
	return items, err
}

func (r *CompanyRepo) First() (*models.CompanyInformation, error) {
	var item models.CompanyInformation
	err := r.db.Get(&item, `SELECT `+companyColumns+` FROM company_information LIMIT 1`)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CompanyRepo) ByID(id int64) (*models.CompanyInformation, error) {
	var item models.CompanyInformation
	err := r.db.Get(&item, `SELECT `+companyColumns+` FROM company_information WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CompanyRepo) Create(item *models.CompanyInformation, actor string) (*models.CompanyInformation, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO company_information (name, about, address, email, phone, map_embed_url, facebook, instagram, linkedin, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`, item.Name, item.About, item.Address, item.Email, item.Phone, item.MapEmbedURL,
		item.Facebook, item.Instagram, item.LinkedIn, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *CompanyRepo) Update(item *models.CompanyInformation, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE company_information
SET name = $2, about = $3, address = $4, email = $5, phone = $6,
    map_embed_url = $7, facebook = $8, instagram = $9, linkedin = $10,
    updated_at = $11, updated_by = $12
WHERE id = $1
`, item.ID, item.Name, item.About, item.Address, item.Email, item.Phone,
		item.MapEmbedURL, item.Facebook, item.Instagram, item.LinkedIn, now, actor)
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

func (r *CompanyRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM company_information WHERE id = $1`, id)
	return translate(err)
}
