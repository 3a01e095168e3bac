package request

import (
	"time"
)

type RescheduleJobRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}
