package repositories

import (
	"aestheti-qr-server/db"
	"aestheti-qr-server/entities"
)

type qrCodePgRepository struct {
	db db.Database
}

func NewQRCodePgRepository(database db.Database) QRCodeRepository {
	return &qrCodePgRepository{db: database}
}

func (r *qrCodePgRepository) Create(code *entities.QRCode) error {
	return r.db.GetDB().Create(code).Error
}

func (r *qrCodePgRepository) GetAll(userID string) ([]entities.QRCode, error) {
	var codes []entities.QRCode
	query := r.db.GetDB().Model(&entities.QRCode{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Order("uploaded_at").Find(&codes).Error
	return codes, err
}

func (r *qrCodePgRepository) Search(userID, name string) ([]entities.QRCode, error) {
	var codes []entities.QRCode
	query := r.db.GetDB().Model(&entities.QRCode{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if name != "" {
		// ILIKE gives the case-insensitive substring match the library
		// search box expects.
		query = query.Where("qrcode_name ILIKE ?", "%"+name+"%")
	}
	err := query.Find(&codes).Error
	return codes, err
}
