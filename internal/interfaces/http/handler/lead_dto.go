package handler

import "github.com/shopspring/decimal"

// CreateLeadRequest is the create-lead payload.
type CreateLeadRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" binding:"omitempty,leadstatus"`
	Value       decimal.Decimal `json:"value"`
}

// UpdateLeadRequest is the partial-update payload.
type UpdateLeadRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *string          `json:"status" binding:"omitempty,leadstatus"`
	Value       *decimal.Decimal `json:"value"`
}

// ListLeadsQuery holds the lead list query parameters.
type ListLeadsQuery struct {
	Status string `form:"status"`
}

// DeleteLeadResponse confirms a lead deletion.
type DeleteLeadResponse struct {
	Message string `json:"message"`
}
