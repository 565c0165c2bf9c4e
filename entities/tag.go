package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CookbookTag is a shared category label. CookbookSum is a cached count of
// associated cookbooks; it is only refreshed by an explicit recount, never
// by the association operations themselves.
type CookbookTag struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `json:"name"`
	Priority    int16     `gorm:"default:0" json:"priority"`
	CookbookSum int       `gorm:"default:0" json:"cookbook_sum"`

	Timestamp
}

func (t *CookbookTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TagCookbookRelationship struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CookbookID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cookbook_tag" json:"cookbook_id"`
	TagID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cookbook_tag" json:"tag_id"`
	Like       int       `gorm:"default:0" json:"like"`
	Unlike     int       `gorm:"default:0" json:"unlike"`

	Cookbook *Cookbook    `gorm:"foreignKey:CookbookID;constraint:OnDelete:CASCADE" json:"-"`
	Tag      *CookbookTag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (r *TagCookbookRelationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
