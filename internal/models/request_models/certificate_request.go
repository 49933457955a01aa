package request_models

import "github.com/google/uuid"

// LocationID absent requests a master certificate.
type CertificateRequest struct {
	LocationID   *uuid.UUID `json:"location_id"`
	PointsEarned int        `json:"points_earned" binding:"min=0"`
}
