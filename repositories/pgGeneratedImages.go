package repositories

import (
	"aestheti-qr-server/db"
	"aestheti-qr-server/entities"
)

type generatedImagePgRepository struct {
	db db.Database
}

func NewGeneratedImagePgRepository(database db.Database) GeneratedImageRepository {
	return &generatedImagePgRepository{db: database}
}

func (r *generatedImagePgRepository) Create(image *entities.GeneratedImage) error {
	return r.db.GetDB().Create(image).Error
}
