package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cookbook is the aggregate root of the catalog. Checked gates public
// visibility: only checked cookbooks appear in the public retrieval scope.
type Cookbook struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `json:"name"`
	URLVideo      string    `gorm:"default:''" json:"url_video,omitempty"`
	URLCoverImage string    `gorm:"default:''" json:"url_cover_image,omitempty"`
	Description   string    `gorm:"type:text;default:''" json:"description"`
	Checked       bool      `gorm:"default:false" json:"checked"`

	Steps []*Step `gorm:"foreignKey:CookbookID" json:"steps,omitempty"`
	Timestamp
}

func (c *Cookbook) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
