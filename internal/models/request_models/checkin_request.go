package request_models

import "github.com/google/uuid"

type CheckInRequest struct {
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	MissionID  uuid.UUID `json:"mission_id" binding:"required"`
}
