package response_models

type Certificate struct {
	ID             string       `json:"id"`
	LocationID     *string      `json:"location_id,omitempty"`
	PointsEarned   int          `json:"points_earned"`
	CertificateURL string       `json:"certificate_url"`
	IsMaster       bool         `json:"is_master"`
	CreatedAt      int64        `json:"created_at"`
	Location       *LocationRef `json:"location,omitempty"`
}
