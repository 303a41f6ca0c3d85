package request

import (
	"leadgate/internal/domain/credit"

	"github.com/google/uuid"
)

type GrantCreditsRequest struct {
	BusinessID uuid.UUID  `json:"business_id" binding:"required"`
	Amount     int64      `json:"amount" binding:"required"`
	Reason     string     `json:"reason" binding:"required"`
	Reference  *uuid.UUID `json:"reference,omitempty"`
}

func (r *GrantCreditsRequest) ToReason() (credit.Reason, error) {
	return credit.NewReason(r.Reason)
}
