package response_models

type CheckIn struct {
	ID           string `json:"id"`
	LocationID   string `json:"location_id"`
	MissionID    string `json:"mission_id"`
	PointsEarned int    `json:"points_earned"`
	CreatedAt    int64  `json:"created_at"`
}

// CheckInHistoryItem carries the joined mission/location shapes the history
// screen renders, composed explicitly instead of passing rows through.
type CheckInHistoryItem struct {
	CheckIn
	Mission  MissionRef  `json:"mission"`
	Location LocationRef `json:"location"`
}

type MissionRef struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}
