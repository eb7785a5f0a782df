package entities

// Account is provisioned by the external identity provider. This service
// only reads it to check that an artifact owner exists; it never creates
// or mutates rows.
type Account struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Email     string `gorm:"unique" json:"email"`
	CreatedAt string `json:"created_at"`
}
