package response_models

// RecommendedLocation passes priority and reason through unmodified; the
// backend priority is the only ordering.
type RecommendedLocation struct {
	Location
	Priority int     `json:"priority"`
	Reason   *string `json:"reason,omitempty"`
}
