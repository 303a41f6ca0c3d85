package response

import (
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"
)

type RevealResponse struct {
	Lead             *queries.LeadView `json:"lead"`
	CreditsRemaining int64             `json:"credits_remaining"`
	AlreadyRevealed  bool              `json:"already_revealed"`
}

func FromRevealResult(result *commands.RevealResult) *RevealResponse {
	return &RevealResponse{
		Lead:             result.Lead,
		CreditsRemaining: result.CreditsRemaining,
		AlreadyRevealed:  result.AlreadyRevealed,
	}
}

type LeadListResponse struct {
	Leads []*queries.LeadView `json:"leads"`
	Total int                 `json:"total"`
}

func FromLeadViews(views []*queries.LeadView) *LeadListResponse {
	if views == nil {
		views = []*queries.LeadView{}
	}
	return &LeadListResponse{
		Leads: views,
		Total: len(views),
	}
}
