package db_models

import "github.com/google/uuid"

// CheckIn records one account completing one mission. PointsEarned is
// snapshotted from the mission row at creation time, never client-supplied.
// One row per (account, mission) pair, enforced by the unique index.
type CheckIn struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_mission"`
	LocationID   uuid.UUID `gorm:"type:uuid;index"`
	MissionID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_mission"`
	PointsEarned int

	Account  Account  `gorm:"foreignKey:AccountID"`
	Location Location `gorm:"foreignKey:LocationID"`
	Mission  Mission  `gorm:"foreignKey:MissionID"`
}
