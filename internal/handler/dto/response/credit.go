package response

import (
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionListResponse struct {
	Transactions []*queries.TransactionView `json:"transactions"`
	Total        int                        `json:"total"`
}

func FromTransactionViews(views []*queries.TransactionView) *TransactionListResponse {
	if views == nil {
		views = []*queries.TransactionView{}
	}
	return &TransactionListResponse{
		Transactions: views,
		Total:        len(views),
	}
}

type GrantCreditsResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

func FromGrantCreditsResult(result *commands.GrantCreditsResult) *GrantCreditsResponse {
	return &GrantCreditsResponse{TransactionID: result.TransactionID}
}
