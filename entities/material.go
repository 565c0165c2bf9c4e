package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialType int16

const (
	MaterialTypeFood MaterialType = iota + 1
	MaterialTypeCondiment
	MaterialTypeTool
)

func (t MaterialType) String() string {
	switch t {
	case MaterialTypeFood:
		return "food"
	case MaterialTypeCondiment:
		return "condiment"
	case MaterialTypeTool:
		return "tool"
	default:
		return "unknown"
	}
}

func (t MaterialType) Valid() bool {
	return t >= MaterialTypeFood && t <= MaterialTypeTool
}

// Material is a shared reference record. Steps point at it through
// MaterialStepRelationship; deleting a step or cookbook never deletes
// the material itself.
type Material struct {
	ID     uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name   string       `json:"name"`
	Detail string       `gorm:"type:text;default:''" json:"detail"`
	Type   MaterialType `json:"type"`
	ImgURL string       `json:"img_url,omitempty"`

	Timestamp
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MaterialStepRelationship struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StepID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_step_material" json:"step_id"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_step_material" json:"material_id"`
	Amount     string    `gorm:"default:''" json:"amount"` // free form, e.g. "200g"
	Priority   int16     `gorm:"default:0" json:"priority"`

	Step     *Step     `gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE" json:"-"`
	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (r *MaterialStepRelationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
