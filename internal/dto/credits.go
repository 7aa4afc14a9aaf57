package dto

import "time"

type BalanceResponseDTO struct {
	Success bool `json:"success"`
	Balance int  `json:"balance" example:"4"`
}

type CreditTransactionDTO struct {
	ID          int       `json:"id" example:"17"`
	Amount      int       `json:"amount" example:"-1"`
	Service     string    `json:"service" example:"itinerary"`
	Description string    `json:"description" example:"3-day Baguio itinerary"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-01T09:30:00+08:00"`
}

type CreditHistoryResponseDTO struct {
	Success bool                   `json:"success"`
	History []CreditTransactionDTO `json:"history"`
	Count   int                    `json:"count" example:"2"`
}

type ConsumeRequestDTO struct {
	Amount      int    `json:"amount" example:"1"`
	Service     string `json:"service" example:"itinerary"`
	Description string `json:"description" example:"3-day Baguio itinerary"`
}

type ConsumeResponseDTO struct {
	Success       bool `json:"success"`
	Balance       int  `json:"balance" example:"3"`
	TransactionID int  `json:"transactionId" example:"18"`
}
