package db_models

import "github.com/google/uuid"

// Recommendation is a directed edge between locations. Priority is an opaque
// sort key assigned by content management; the API never reorders beyond it.
type Recommendation struct {
	BaseModel
	SourceLocationID      uuid.UUID `gorm:"type:uuid;index"`
	RecommendedLocationID uuid.UUID `gorm:"type:uuid"`
	Priority              int
	Reason                *string
	Active                bool `gorm:"default:true"`

	SourceLocation      Location `gorm:"foreignKey:SourceLocationID"`
	RecommendedLocation Location `gorm:"foreignKey:RecommendedLocationID"`
}
