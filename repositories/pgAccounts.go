package repositories

import (
	"aestheti-qr-server/db"
	"aestheti-qr-server/entities"
)

type accountPgRepository struct {
	db db.Database
}

func NewAccountPgRepository(database db.Database) AccountRepository {
	return &accountPgRepository{db: database}
}

// Exists checks the accounts table maintained by the identity provider.
func (r *accountPgRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
