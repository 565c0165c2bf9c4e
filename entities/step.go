package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Step is one ordered action in a cookbook's preparation sequence. A step
// cannot exist without its owning cookbook; deleting the cookbook removes
// all of its steps.
type Step struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	CookbookID uuid.UUID     `gorm:"type:uuid;not null" json:"cookbook_id"`
	Name       string        `json:"name"`
	Detail     string        `gorm:"type:text;default:''" json:"detail"`
	Priority   int16         `gorm:"default:0" json:"priority"`
	ImgURL     string        `json:"img_url,omitempty"`
	Duration   time.Duration `gorm:"default:0" json:"duration"`

	Cookbook *Cookbook `gorm:"foreignKey:CookbookID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DurationDescribe renders the step duration as h:mm:ss for display.
func (s *Step) DurationDescribe() string {
	d := s.Duration
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}
