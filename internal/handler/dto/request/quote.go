package request

import (
	"strings"

	"leadgate/internal/usecase/commands"
)

type SubmitQuoteRequest struct {
	ConsumerName  string `json:"consumer_name" binding:"required"`
	ConsumerEmail string `json:"consumer_email" binding:"required,email"`
	ConsumerPhone string `json:"consumer_phone" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Timeline      string `json:"timeline,omitempty"`
	BudgetCents   int64  `json:"budget_cents"`
	Zipcode       string `json:"zipcode" binding:"required"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Address       string `json:"address,omitempty"`
	Note          string `json:"note,omitempty"`
}

func (r *SubmitQuoteRequest) ToSubmission() commands.QuoteSubmission {
	return commands.QuoteSubmission{
		ConsumerName:  strings.TrimSpace(r.ConsumerName),
		ConsumerEmail: strings.TrimSpace(r.ConsumerEmail),
		ConsumerPhone: strings.TrimSpace(r.ConsumerPhone),
		Category:      strings.TrimSpace(r.Category),
		Description:   strings.TrimSpace(r.Description),
		Timeline:      strings.TrimSpace(r.Timeline),
		BudgetCents:   r.BudgetCents,
		Zipcode:       strings.TrimSpace(r.Zipcode),
		City:          strings.TrimSpace(r.City),
		State:         strings.TrimSpace(r.State),
		Address:       strings.TrimSpace(r.Address),
		Note:          strings.TrimSpace(r.Note),
	}
}
