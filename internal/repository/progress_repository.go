package repository

import (
	"storynest_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindOrCreate returns the single progress row for (book, user), creating it
// when absent. The composite unique index on (book_id, user_id) guarantees at
// most one row even under concurrent creates.
func (r *ProgressRepository) FindOrCreate(tx *gorm.DB, bookID, userID uint) (*model.ReadingProgress, error) {
	if tx == nil {
		tx = r.DB
	}
	var progress model.ReadingProgress
	err := tx.
		Where("book_id = ? AND user_id = ?", bookID, userID).
		FirstOrCreate(&progress, model.ReadingProgress{BookID: bookID, UserID: userID}).Error
	return &progress, err
}

// FindForUser loads the caller's progress with its child collections, or
// gorm.ErrRecordNotFound when the user has never touched the book.
func (r *ProgressRepository) FindForUser(bookID, userID uint) (*model.ReadingProgress, error) {
	var progress model.ReadingProgress
	err := r.DB.
		Preload("Bookmarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookmarks.created_at ASC")
		}).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("interactive_completions.created_at ASC")
		}).
		Preload("Moods", func(db *gorm.DB) *gorm.DB {
			return db.Order("mood_entries.created_at ASC")
		}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) Save(tx *gorm.DB, progress *model.ReadingProgress) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Save(progress).Error
}

func (r *ProgressRepository) AddBookmark(tx *gorm.DB, bookmark *model.Bookmark) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(bookmark).Error
}

func (r *ProgressRepository) AddCompletion(tx *gorm.DB, completion *model.InteractiveCompletion) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(completion).Error
}

func (r *ProgressRepository) AddMood(tx *gorm.DB, mood *model.MoodEntry) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(mood).Error
}

// CompletedElementIDs returns the distinct element ids the user has completed
// for the given progress record.
func (r *ProgressRepository) CompletedElementIDs(progressID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.InteractiveCompletion{}).
		Where("progress_id = ?", progressID).
		Distinct("element_id").
		Pluck("element_id", &ids).Error
	return ids, err
}
