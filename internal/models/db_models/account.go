package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string

	CheckIns     []CheckIn     `gorm:"foreignKey:AccountID"`
	Certificates []Certificate `gorm:"foreignKey:AccountID"`
}
