package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfilePic is the single profile picture an account owns. The unique
// index on user_id enforces one picture per account.
type ProfilePic struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;uniqueIndex;not null" json:"user"`
	ImageURL   string    `gorm:"not null" json:"imageUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (p *ProfilePic) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New().String()
	p.UploadedAt = time.Now()
	return
}
