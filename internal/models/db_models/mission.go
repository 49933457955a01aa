package db_models

import "github.com/google/uuid"

type Mission struct {
	BaseModel
	LocationID  uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Points      int
	Active      bool `gorm:"default:true"`

	Location Location `gorm:"foreignKey:LocationID"`
	CheckIns []CheckIn
}
