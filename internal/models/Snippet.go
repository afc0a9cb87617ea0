// internal/models/snippet.go
package models

import "gorm.io/gorm"

// Choices accepted for Snippet.Language and Snippet.Style.
const (
	LanguagePython     = "python"
	LanguageJavascript = "javascript"

	StyleFriendly = "friendly"
	StyleMonokai  = "monokai"
)

// Snippet is a pastebin-style code snippet, optionally owned by a user.
// Anonymous snippets keep a null owner.
type Snippet struct {
	gorm.Model
	Title    string `json:"title" gorm:"size:100;not null"`
	Code     string `json:"code" gorm:"not null"`
	Linenos  bool   `json:"linenos"`
	Language string `json:"language"`
	Style    string `json:"style"`

	OwnerID *uint `json:"owner_id" gorm:"index"`
	Owner   *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner,omitempty"`
}

// BeforeCreate fills in the tutorial defaults when the client omits them.
func (s *Snippet) BeforeCreate(tx *gorm.DB) error {
	if s.Language == "" {
		s.Language = LanguagePython
	}
	if s.Style == "" {
		s.Style = StyleFriendly
	}
	return nil
}
