package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type ReadingLevel string

const (
	Beginner     ReadingLevel = "Beginner"
	Intermediate ReadingLevel = "Intermediate"
	Advanced     ReadingLevel = "Advanced"
)

// ValidReadingLevel reports whether s is a member of the reading-level enum.
func ValidReadingLevel(s string) bool {
	switch ReadingLevel(s) {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

const (
	MinReaderAge = 5
	MaxReaderAge = 18
)

// StringList stores a set of genre tags as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Contains reports whether the list has tag (exact match).
func (l StringList) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

// Intersects reports whether the list shares at least one tag with tags.
func (l StringList) Intersects(tags []string) bool {
	for _, t := range tags {
		if l.Contains(t) {
			return true
		}
	}
	return false
}

// swagger:model Book
type Book struct {
	BaseModel
	Title        string       `gorm:"size:255;not null" json:"title"`
	Author       string       `gorm:"size:255;not null" json:"author"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	CoverImage   string       `gorm:"size:512;not null" json:"coverImage"`
	Content      string       `gorm:"type:text" json:"content"`
	AgeMin       int          `gorm:"not null" json:"ageMin"`
	AgeMax       int          `gorm:"not null" json:"ageMax"`
	Genres       StringList   `gorm:"type:json" json:"genres"`
	ReadingLevel ReadingLevel `gorm:"size:20;not null" json:"readingLevel"`

	Pages    []Page            `gorm:"foreignKey:BookID" json:"pages,omitempty"`
	Progress []ReadingProgress `gorm:"foreignKey:BookID" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// AllElements flattens the interactive elements of every page in page order.
func (b *Book) AllElements() []InteractiveElement {
	var out []InteractiveElement
	for _, p := range b.Pages {
		out = append(out, p.Elements...)
	}
	return out
}
