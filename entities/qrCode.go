package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QRCode is one saved QR image in an account's library. ImageURL is
// usually a data URI rendered client-side. Names are free-form and not
// unique; an account can own any number of codes.
type QRCode struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;index;not null" json:"user"`
	ImageURL   string    `gorm:"not null" json:"imageUrl"`
	QRCodeName string    `gorm:"column:qrcode_name" json:"qrcodeName"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) (err error) {
	q.ID = uuid.New().String()
	q.UploadedAt = time.Now()
	return
}
