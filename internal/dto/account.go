package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountCreateRequestDTO struct {
	Name string `json:"name" example:"Checking"`
}

type AccountResponseDTO struct {
	ID        string          `json:"id" example:"9f4f2b26-35f3-48be-aeb1-6c8348e73efc"`
	Name      string          `json:"name" example:"Checking"`
	Balance   decimal.Decimal `json:"balance" example:"100.50"`
	CreatedAt time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
