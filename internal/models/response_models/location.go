package response_models

type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Facts       []string `json:"facts"`
	ModelURL    *string  `json:"model_url,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Featured    bool     `json:"featured"`
}

type Mission struct {
	ID          string `json:"id"`
	LocationID  string `json:"location_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// LocationRef is the nested location shape embedded in check-in and
// certificate responses.
type LocationRef struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
