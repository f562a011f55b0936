package model

import "time"

// ReadingProgress is the per-user, per-book record of position, bookmarks,
// completed interactives and mood reports. The composite unique index makes
// the one-record-per-user-per-book invariant structural: concurrent
// find-or-create upserts cannot produce duplicate rows.
// swagger:model ReadingProgress
type ReadingProgress struct {
	BaseModel
	BookID      uint      `gorm:"uniqueIndex:idx_book_user;not null" json:"-"`
	UserID      uint      `gorm:"uniqueIndex:idx_book_user;not null" json:"userId"`
	CurrentPage int       `gorm:"default:0" json:"currentPage"`
	LastReadAt  time.Time `json:"lastReadAt"`

	Bookmarks   []Bookmark              `gorm:"foreignKey:ProgressID" json:"bookmarks,omitempty"`
	Completions []InteractiveCompletion `gorm:"foreignKey:ProgressID" json:"completedInteractives,omitempty"`
	Moods       []MoodEntry             `gorm:"foreignKey:ProgressID" json:"moods,omitempty"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

// swagger:model Bookmark
type Bookmark struct {
	BaseModel
	ProgressID uint   `gorm:"index;not null" json:"-"`
	Page       int    `gorm:"not null" json:"page"`
	Note       string `gorm:"size:500" json:"note"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// InteractiveCompletion records one completion of an interactive element.
// Repeated completions of the same element append additional rows; scoring
// or analytics built on this table must expect multiple rows per element.
// swagger:model InteractiveCompletion
type InteractiveCompletion struct {
	BaseModel
	ProgressID  uint      `gorm:"index;not null" json:"-"`
	ElementID   string    `gorm:"size:36;index;not null" json:"elementId"`
	Score       int       `gorm:"default:0" json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

func (InteractiveCompletion) TableName() string {
	return "interactive_completions"
}

// MoodEntry is a timestamped emotional self-report tied to a page. The mood
// label is free text; the client vocabulary (Sad, Frustrated, Calm,
// Fascinated, Delighted) is a presentation convention, not enforced here.
// swagger:model MoodEntry
type MoodEntry struct {
	BaseModel
	ProgressID uint   `gorm:"index;not null" json:"-"`
	PageNumber int    `gorm:"not null" json:"pageNumber"`
	Mood       string `gorm:"size:50;not null" json:"mood"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
