package db_models

import "github.com/google/uuid"

// Certificate is immutable once issued. LocationID nil means a master
// certificate spanning the whole catalog.
type Certificate struct {
	BaseModel
	AccountID      uuid.UUID  `gorm:"type:uuid;index"`
	LocationID     *uuid.UUID `gorm:"type:uuid"`
	PointsEarned   int
	CertificateURL string
	IsMaster       bool

	Account  Account   `gorm:"foreignKey:AccountID"`
	Location *Location `gorm:"foreignKey:LocationID"`
}
