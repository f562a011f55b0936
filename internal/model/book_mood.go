package model

// BookMood is the user-side mirror of the mood entries stored in a book's
// reading progress, keyed by book. Both sides are written inside one
// transaction by the reader service.
// swagger:model BookMood
type BookMood struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex:idx_user_book;not null" json:"-"`
	BookID uint `gorm:"uniqueIndex:idx_user_book;not null" json:"bookId"`

	Moods []UserMoodEntry `gorm:"foreignKey:BookMoodID" json:"moods,omitempty"`
}

func (BookMood) TableName() string {
	return "book_moods"
}

// swagger:model UserMoodEntry
type UserMoodEntry struct {
	BaseModel
	BookMoodID uint   `gorm:"index;not null" json:"-"`
	Mood       string `gorm:"size:50;not null" json:"mood"`
}

func (UserMoodEntry) TableName() string {
	return "user_mood_entries"
}
