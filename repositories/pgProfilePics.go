package repositories

import (
	"aestheti-qr-server/db"
	"aestheti-qr-server/entities"
)

type profilePicPgRepository struct {
	db db.Database
}

func NewProfilePicPgRepository(database db.Database) ProfilePicRepository {
	return &profilePicPgRepository{db: database}
}

func (r *profilePicPgRepository) Create(pic *entities.ProfilePic) error {
	return r.db.GetDB().Create(pic).Error
}

func (r *profilePicPgRepository) GetByUserID(userID string) (*entities.ProfilePic, error) {
	var pic entities.ProfilePic
	err := r.db.GetDB().Where("user_id = ?", userID).First(&pic).Error
	if err != nil {
		return nil, err
	}
	return &pic, nil
}

func (r *profilePicPgRepository) Update(pic *entities.ProfilePic) error {
	return r.db.GetDB().Save(pic).Error
}

func (r *profilePicPgRepository) DeleteByUserID(userID string) error {
	return r.db.GetDB().Where("user_id = ?", userID).Delete(&entities.ProfilePic{}).Error
}
