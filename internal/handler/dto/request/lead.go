package request

import (
	"leadgate/internal/domain/lead"
)

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *SetStatusRequest) ToDomain() (lead.Status, error) {
	return lead.NewStatus(r.Status)
}
