package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditorUser is a catalog editor account. Editors see the unfiltered
// cookbook scope and manage the catalog through the admin routes.
type EditorUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Timestamp
}

func (e *EditorUser) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
