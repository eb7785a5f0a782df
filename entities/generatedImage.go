package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedImage records one successful AI generation so prompts and
// their results can be audited later.
type GeneratedImage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Prompt    string    `gorm:"not null" json:"prompt"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *GeneratedImage) BeforeCreate(tx *gorm.DB) (err error) {
	g.ID = uuid.New().String()
	g.CreatedAt = time.Now()
	return
}
