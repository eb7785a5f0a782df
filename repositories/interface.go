package repositories

import "aestheti-qr-server/entities"

type ProfilePicRepository interface {
	Create(pic *entities.ProfilePic) error
	GetByUserID(userID string) (*entities.ProfilePic, error)
	Update(pic *entities.ProfilePic) error
	DeleteByUserID(userID string) error
}

type QRCodeRepository interface {
	Create(code *entities.QRCode) error
	GetAll(userID string) ([]entities.QRCode, error)
	Search(userID, name string) ([]entities.QRCode, error)
}

type GeneratedImageRepository interface {
	Create(image *entities.GeneratedImage) error
}

type AccountRepository interface {
	Exists(id string) (bool, error)
}
