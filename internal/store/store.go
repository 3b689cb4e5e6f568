package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// Sentinel errors the service layer translates into caller-facing outcomes.
var (
	// ErrReferenced marks a delete rejected because another table still
	// holds a foreign key to the row.
	ErrReferenced = errors.New("row is still referenced")
	// ErrDuplicate marks an insert rejected by a uniqueness constraint.
	ErrDuplicate = errors.New("row already exists")
)

// OwnerKind tags which parent table a photo or slide row belongs to.
// The legacy schema used a free-form string; the enum keeps typos from
// silently orphaning rows.
type OwnerKind string

const (
	OwnerProducts  OwnerKind = "Products"
	OwnerNews      OwnerKind = "News"
	OwnerSolutions OwnerKind = "Solutions"
	OwnerPages     OwnerKind = "Pages"
)

func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerProducts, OwnerNews, OwnerSolutions, OwnerPages:
		return true
	}
	return false
}

// Owner identifies the parent of a polymorphic attachment row.
type Owner struct {
	Kind OwnerKind
	ID   int64
}

func (o Owner) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("unknown owner kind %q", o.Kind)
	}
	if o.ID <= 0 {
		return fmt.Errorf("invalid owner id %d", o.ID)
	}
	return nil
}

// querier is satisfied by both *sqlx.DB and *sqlx.Tx so repositories can run
// inside or outside a transaction.
type querier interface {
	sqlx.Ext
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}

// Store bundles one repository per entity over a shared connection pool.
type Store struct {
	db *sqlx.DB

	Categories      *CategoryRepo
	Products        *ProductRepo
	News            *NewsRepo
	Solutions       *SolutionRepo
	Pages           *PageRepo
	Slides          *SlideRepo
	TechnicalDocs   *TechnicalDocRepo
	OtherCategories *OtherCategoryRepo
	Users           *UserRepo
	Roles           *RoleRepo
	Contacts        *ContactRepo
	Company         *CompanyRepo
	Photos          *PhotoRepo
}

func New(db *sqlx.DB) *Store {
	s := &Store{db: db}
	s.Photos = &PhotoRepo{db: db}
	s.Categories = &CategoryRepo{db: db}
	s.Products = &ProductRepo{db: db, photos: s.Photos, store: s}
	s.News = &NewsRepo{db: db, photos: s.Photos, store: s}
	s.Solutions = &SolutionRepo{db: db, photos: s.Photos, store: s}
	s.Pages = &PageRepo{db: db}
	s.Slides = &SlideRepo{db: db}
	s.TechnicalDocs = &TechnicalDocRepo{db: db}
	s.OtherCategories = &OtherCategoryRepo{db: db}
	s.Users = &UserRepo{db: db}
	s.Roles = &RoleRepo{db: db}
	s.Contacts = &ContactRepo{db: db}
	s.Company = &CompanyRepo{db: db}
	return s
}

// inTx runs fn inside a transaction, rolling back on error or panic.
func (s *Store) inTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// translate maps driver-level constraint violations onto the store's
// sentinel errors so callers never match on SQLSTATE codes themselves.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		}
	}
	return err
}

// noRows reports whether err is the absent-row case repositories surface as
// a nil entity rather than an error.
func noRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func rowsAffected(res sql.Result) bool {
	count, err := res.RowsAffected()
	return err == nil && count > 0
}
