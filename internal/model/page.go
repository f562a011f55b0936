package model

import "gorm.io/datatypes"

type ElementKind string

const (
	QuizElement  ElementKind = "Quiz"
	VideoElement ElementKind = "Video"
	AudioElement ElementKind = "Audio"
	GameElement  ElementKind = "Game"
)

// ValidElementKind reports whether s is a member of the element-kind enum.
func ValidElementKind(s string) bool {
	switch ElementKind(s) {
	case QuizElement, VideoElement, AudioElement, GameElement:
		return true
	}
	return false
}

// swagger:model Page
type Page struct {
	BaseModel
	BookID   uint   `gorm:"index;not null" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `gorm:"size:512" json:"imageUrl,omitempty"`
	AudioURL string `gorm:"size:512" json:"audioUrl,omitempty"`

	Elements []InteractiveElement `gorm:"foreignKey:PageID" json:"interactiveElements,omitempty"`
}

func (Page) TableName() string {
	return "pages"
}

// InteractiveElement is a quiz/video/audio/game unit embedded in a page.
// Content is a kind-specific payload the server treats as opaque; quiz
// payloads carry their own sub-shape (dragDrop, yesNo, openQuestion).
// swagger:model InteractiveElement
type InteractiveElement struct {
	UUIDBase
	PageID   uint           `gorm:"index;not null" json:"-"`
	Position int            `gorm:"not null" json:"position"`
	Kind     ElementKind    `gorm:"size:20;not null" json:"kind"`
	Content  datatypes.JSON `gorm:"type:json" json:"content"`
}

func (InteractiveElement) TableName() string {
	return "interactive_elements"
}
