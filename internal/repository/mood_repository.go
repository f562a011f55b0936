package repository

import (
	"storynest_backend/internal/model"

	"gorm.io/gorm"
)

type MoodRepository struct {
	DB *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{DB: db}
}

// FindOrCreate returns the user-side mood log for (user, book), creating the
// book-keyed entry when absent.
func (r *MoodRepository) FindOrCreate(tx *gorm.DB, userID, bookID uint) (*model.BookMood, error) {
	if tx == nil {
		tx = r.DB
	}
	var bm model.BookMood
	err := tx.
		Where("user_id = ? AND book_id = ?", userID, bookID).
		FirstOrCreate(&bm, model.BookMood{UserID: userID, BookID: bookID}).Error
	return &bm, err
}

func (r *MoodRepository) AddMood(tx *gorm.DB, entry *model.UserMoodEntry) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(entry).Error
}

// ListByUser returns the user's mood logs with entries in record order.
func (r *MoodRepository) ListByUser(userID uint) ([]model.BookMood, error) {
	var moods []model.BookMood
	err := r.DB.
		Preload("Moods", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_mood_entries.created_at ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&moods).Error
	return moods, err
}
