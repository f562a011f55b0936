package repository

import (
	"strings"

	"storynest_backend/internal/model"

	"gorm.io/gorm"
)

// BookFilter carries the optional, conjunctive catalog filters. Age zero
// means "no age filter"; genre intersection is applied by the caller since
// genres live in a JSON column.
type BookFilter struct {
	Age          int
	ReadingLevel string
	Search       string
}

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{DB: db}
}

func (r *BookRepository) Create(book *model.Book) error {
	return r.DB.Create(book).Error
}

func (r *BookRepository) FindByID(id uint) (*model.Book, error) {
	var book model.Book
	err := r.DB.
		Preload("Pages", func(db *gorm.DB) *gorm.DB {
			return db.Order("pages.position ASC")
		}).
		Preload("Pages.Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("interactive_elements.position ASC")
		}).
		First(&book, id).Error
	return &book, err
}

func (r *BookRepository) List(filter BookFilter) ([]model.Book, error) {
	query := r.DB.Model(&model.Book{}).
		Preload("Pages", func(db *gorm.DB) *gorm.DB {
			return db.Order("pages.position ASC")
		}).
		Preload("Pages.Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("interactive_elements.position ASC")
		})

	if filter.Age > 0 {
		query = query.Where("age_min <= ? AND age_max >= ?", filter.Age, filter.Age)
	}

	if filter.ReadingLevel != "" {
		query = query.Where("reading_level = ?", filter.ReadingLevel)
	}

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term,
		)
	}

	var books []model.Book
	err := query.Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *BookRepository) Update(book *model.Book) error {
	return r.DB.Save(book).Error
}

func (r *BookRepository) Delete(book *model.Book) error {
	return r.DB.Delete(book).Error
}
