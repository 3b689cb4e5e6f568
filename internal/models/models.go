package models

import "time"

// Audit carries the columns every first-class table shares. CreatedBy and
// UpdatedBy hold the identity of the authenticated caller, not a user FK.
type Audit struct {
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	CreatedBy string     `db:"created_by" json:"createdBy"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
	UpdatedBy *string    `db:"updated_by" json:"updatedBy"`
}

type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Audit
}

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	CategoryID  *int64  `db:"category_id" json:"categoryId"`
	// CategoryName is filled by the LEFT JOIN in list queries.
	CategoryName *string  `db:"category_name" json:"categoryName"`
	Photos       []string `db:"-" json:"photos"`
	Audit
}

type News struct {
	ID         int64    `db:"id" json:"id"`
	Title      string   `db:"title" json:"title"`
	Content    string   `db:"content" json:"content"`
	Author     *string  `db:"author" json:"author"`
	CategoryID *int64   `db:"category_id" json:"categoryId"`
	Photos     []string `db:"-" json:"photos"`
	Audit
}

type Solution struct {
	ID          int64             `db:"id" json:"id"`
	Title       string            `db:"title" json:"title"`
	Description *string           `db:"description" json:"description"`
	MainPicture *string           `db:"main_picture" json:"mainPicture"`
	Photos      []string          `db:"-" json:"photos"`
	Products    []SolutionProduct `db:"-" json:"products"`
	Audit
}

type SolutionProduct struct {
	SolutionID  int64   `db:"solution_id" json:"solutionId"`
	ProductID   int64   `db:"product_id" json:"productId"`
	ProductName *string `db:"product_name" json:"productName"`
}

type PageStatus string

const (
	PageDraft     PageStatus = "Draft"
	PagePublished PageStatus = "Published"
	PageArchived  PageStatus = "Archived"
)

func (s PageStatus) Valid() bool {
	switch s {
	case PageDraft, PagePublished, PageArchived:
		return true
	}
	return false
}

type Page struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Slug         string     `db:"slug" json:"slug"`
	Content      *string    `db:"content" json:"content"`
	Status       PageStatus `db:"status" json:"status"`
	VisitorCount int64      `db:"visitor_count" json:"visitorCount"`
	Audit
}

type Slide struct {
	ID          int64   `db:"id" json:"id"`
	Description *string `db:"description" json:"description"`
	PicturePath string  `db:"picture_path" json:"picturePath"`
	EntityType  *string `db:"entity_type" json:"entityType"`
	EntityID    *int64  `db:"entity_id" json:"entityId"`
	Audit
}

// TechnicalDoc keeps its legacy string-typed numeric identifier; the column
// is TEXT fed from a sequence.
type TechnicalDoc struct {
	ID           string  `db:"td_id" json:"tdId"`
	Name         string  `db:"name" json:"name"`
	FilePath     *string `db:"file_path" json:"filePath"`
	CategoryID   *int64  `db:"td_category_id" json:"tdCategoryId"`
	CategoryName *string `db:"category_name" json:"categoryName"`
	Audit
}

// OtherCategory is the shared category table discriminated by CategoryType
// ("TD", "News", ...). CategoryType plus CategoryID jointly key a row.
type OtherCategory struct {
	CategoryID   int64  `db:"category_id" json:"categoryId"`
	CategoryType string `db:"category_type" json:"categoryType"`
	Name         string `db:"name" json:"name"`
	Audit
}

type User struct {
	ID           int64   `db:"id" json:"id"`
	FullName     string  `db:"full_name" json:"fullName"`
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	RoleID       int64   `db:"role_id" json:"roleId"`
	RoleName     *string `db:"role_name" json:"roleName"`
	Audit
}

type Role struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ContactMessage struct {
	ID        int64   `db:"id" json:"id"`
	FirstName string  `db:"first_name" json:"firstName"`
	LastName  *string `db:"last_name" json:"lastName"`
	Company   *string `db:"company" json:"company"`
	Email     string  `db:"email" json:"email"`
	Phone     string  `db:"phone" json:"phone"`
	Message   string  `db:"message" json:"message"`
	Audit
}

type CompanyInformation struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	About       *string `db:"about" json:"about"`
	Address     *string `db:"address" json:"address"`
	Email       *string `db:"email" json:"email"`
	Phone       *string `db:"phone" json:"phone"`
	MapEmbedURL *string `db:"map_embed_url" json:"mapEmbedUrl"`
	Facebook    *string `db:"facebook" json:"facebook"`
	Instagram   *string `db:"instagram" json:"instagram"`
	LinkedIn    *string `db:"linkedin" json:"linkedin"`
	Audit
}

type Photo struct {
	ID         int64  `db:"id" json:"id"`
	EntityID   int64  `db:"entity_id" json:"entityId"`
	EntityType string `db:"entity_type" json:"entityType"`
	URL        string `db:"url" json:"url"`
}
