package transaction

import (
	"time"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

type TransactionResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Amount        int       `json:"amount"`
	BalanceBefore int       `json:"balance_before"`
	BalanceAfter  int       `json:"balance_after"`
	Type          string    `json:"type"`
	ReferenceID   string    `json:"reference_id"`
	Reason        string    `json:"reason"`
	Operator      string    `json:"operator"`
	Hash          string    `json:"hash"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

func toTransactionResponse(t *models.CreditTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		Type:          string(t.Type),
		ReferenceID:   t.ReferenceID,
		Reason:        t.Reason,
		Operator:      t.Operator,
		Hash:          t.Hash,
		CreatedAt:     t.CreatedAt,
	}
}
