package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionRequestDTO struct {
	AccountID string          `json:"account_id" example:"9f4f2b26-35f3-48be-aeb1-6c8348e73efc"`
	Amount    decimal.Decimal `json:"amount" example:"100.50"`
}

type TransactionResponseDTO struct {
	ID        string          `json:"id" example:"41edb24c-5261-42fd-8456-21d23bd38811"`
	AccountID string          `json:"account_id" example:"9f4f2b26-35f3-48be-aeb1-6c8348e73efc"`
	Kind      string          `json:"kind" example:"DEPOSIT"`
	Amount    decimal.Decimal `json:"amount" example:"100.50"`
	CreatedAt time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
