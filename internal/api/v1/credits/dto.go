package credits

import "time"

type BalanceResponse struct {
	UserID  uint `json:"user_id"`
	Balance int  `json:"balance"`
}

type TransactionResponse struct {
	ID            uint      `json:"id"`
	Amount        int       `json:"amount"`
	BalanceBefore int       `json:"balance_before"`
	BalanceAfter  int       `json:"balance_after"`
	Type          string    `json:"type"`
	ReferenceID   string    `json:"reference_id"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}
