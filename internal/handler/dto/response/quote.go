package response

import (
	"leadgate/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitQuoteResponse struct {
	LeadID     uuid.UUID `json:"lead_id"`
	Candidates int       `json:"candidates"`
}

func FromSubmitQuoteResult(result *commands.SubmitQuoteResult) *SubmitQuoteResponse {
	return &SubmitQuoteResponse{
		LeadID:     result.LeadID,
		Candidates: result.Candidates,
	}
}
