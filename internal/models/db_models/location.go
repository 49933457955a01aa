package db_models

import "github.com/lib/pq"

// Location is content-managed; the API only ever reads these rows.
type Location struct {
	BaseModel
	Name        string
	City        string
	Country     string
	Description string
	ImageURL    string
	Facts       pq.StringArray `gorm:"type:text[]"`
	ModelURL    *string
	Latitude    *float64
	Longitude   *float64
	Featured    bool

	Missions        []Mission        `gorm:"foreignKey:LocationID"`
	CheckIns        []CheckIn        `gorm:"foreignKey:LocationID"`
	Recommendations []Recommendation `gorm:"foreignKey:SourceLocationID"`
}
