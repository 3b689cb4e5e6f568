package store

import (
	"time"

	"enertek-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct {
	db *sqlx.DB
}

const userColumns = `
u.id, u.full_name, u.email, u.password_hash, u.role_id, r.name AS role_name,
u.created_at, u.created_by, u.updated_at, u.updated_by
`

func (r *UserRepo) All() ([]models.User, error) {
	items := []models.User{}
	err := r.db.Select(&items, `
SELECT `+userColumns+`
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
`)
	return items, err
}

func (r *UserRepo) ByID(id int64) (*models.User, error) {
	var item models.User
	err := r.db.Get(&item, `
SELECT `+userColumns+`
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE u.id = $1
`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *UserRepo) ByEmail(email string) (*models.User, error) {
	var item models.User
	err := r.db.Get(&item, `
SELECT `+userColumns+`
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE lower(u.email) = lower($1)
`, email)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *UserRepo) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email)
	return exists, err
}

func (r *UserRepo) Create(item *models.User, actor string) (*models.User, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.CreatedBy = actor
	err := r.db.Get(&item.ID, `
INSERT INTO users (full_name, email, password_hash, role_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, item.FullName, item.Email, item.PasswordHash, item.RoleID, now, actor)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *UserRepo) Update(item *models.User, actor string) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
UPDATE users
SET full_name = $2, email = $3, role_id = $4, updated_at = $5, updated_by = $6
WHERE id = $1
`, item.ID, item.FullName, item.Email, item.RoleID, now, actor)
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

func (r *UserRepo) UpdatePassword(id int64, passwordHash string, actor string) (bool, error) {
	res, err := r.db.Exec(`
UPDATE users SET password_hash = $2, updated_at = $3, updated_by = $4 WHERE id = $1
`, id, passwordHash, time.Now().UTC(), actor)
	if err != nil {
		return false, err
	}
	return rowsAffected(res), nil
}

func (r *UserRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	return translate(err)
}

type RoleRepo struct {
	db *sqlx.DB
}

func (r *RoleRepo) All() ([]models.Role, error) {
	items := []models.Role{}
	err := r.db.Select(&items, `SELECT id, name FROM roles`)
	return items, err
}

func (r *RoleRepo) ByID(id int64) (*models.Role, error) {
	var item models.Role
	err := r.db.Get(&item, `SELECT id, name FROM roles WHERE id = $1`, id)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RoleRepo) ByName(name string) (*models.Role, error) {
	var item models.Role
	err := r.db.Get(&item, `SELECT id, name FROM roles WHERE lower(name) = lower($1)`, name)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RoleRepo) Create(item *models.Role) (*models.Role, error) {
	err := r.db.Get(&item.ID, `INSERT INTO roles (name) VALUES ($1) RETURNING id`, item.Name)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (r *RoleRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM roles WHERE id = $1`, id)
	return translate(err)
}
