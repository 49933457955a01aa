package response_models

// LocationProgress mirrors pkg/progression.Summary for one location. Ratio is
// only meaningful when HasRatio is true (a location with no active missions
// has no defined ratio).
type LocationProgress struct {
	Location
	CompletedMissions int     `json:"completed_missions"`
	TotalMissions     int     `json:"total_missions"`
	CompletedPoints   int     `json:"completed_points"`
	TotalPoints       int     `json:"total_points"`
	Ratio             float64 `json:"ratio"`
	HasRatio          bool    `json:"has_ratio"`
	FullyCompleted    bool    `json:"fully_completed"`
}

type ProgressOverview struct {
	Locations         []LocationProgress `json:"locations"`
	CompletedMissions int                `json:"completed_missions"`
	TotalMissions     int                `json:"total_missions"`
	CompletedPoints   int                `json:"completed_points"`
	TotalPoints       int                `json:"total_points"`
	Ratio             float64            `json:"ratio"`
	HasRatio          bool               `json:"has_ratio"`
	MasterEligible    bool               `json:"master_eligible"`
}
