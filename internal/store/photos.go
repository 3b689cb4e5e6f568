package store

import (
	"github.com/jmoiron/sqlx"
)

// PhotoRepo is the generic attachment sub-store shared by products, news and
// solutions. Rows are keyed by (entity_id, entity_type); url carries no
// uniqueness constraint, so DeleteByURL can remove more than one row.
type PhotoRepo struct {
	db *sqlx.DB
}

func (r *PhotoRepo) Add(owner Owner, url string) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	return addPhoto(r.db, owner, url)
}

func (r *PhotoRepo) ForOwner(owner Owner) ([]string, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	return photosForOwner(r.db, owner)
}

// DeleteByURL removes every photo row carrying the given url and reports how
// many rows went away.
func (r *PhotoRepo) DeleteByURL(url string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM photos WHERE url = $1`, url)
	if err != nil {
		return 0, translate(err)
	}
	count, _ := res.RowsAffected()
	return count, nil
}

func (r *PhotoRepo) DeleteForOwner(owner Owner) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	return deletePhotosForOwner(r.db, owner)
}

// The helpers below run against either the pool or an open transaction so
// parent repositories can fold photo cleanup into their cascade deletes.

func addPhoto(q querier, owner Owner, url string) error {
	_, err := q.Exec(`INSERT INTO photos (entity_id, entity_type, url) VALUES ($1, $2, $3)`,
		owner.ID, string(owner.Kind), url)
	return translate(err)
}

func photosForOwner(q querier, owner Owner) ([]string, error) {
	urls := []string{}
	err := q.Select(&urls, `SELECT url FROM photos WHERE entity_id = $1 AND entity_type = $2`,
		owner.ID, string(owner.Kind))
	return urls, err
}

func deletePhotosForOwner(q querier, owner Owner) error {
	_, err := q.Exec(`DELETE FROM photos WHERE entity_id = $1 AND entity_type = $2`,
		owner.ID, string(owner.Kind))
	return translate(err)
}

func deletePhotoByURL(q querier, owner Owner, url string) error {
	_, err := q.Exec(`DELETE FROM photos WHERE entity_id = $1 AND entity_type = $2 AND url = $3`,
		owner.ID, string(owner.Kind), url)
	return translate(err)
}
