package advertisement

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Salary fields arrive as raw JSON so that absence, null, empty string, and a
// real value can be told apart; the money package interprets them.
type CreateAdvertisementRequest struct {
	CompanyID    uint            `json:"company_id" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Location     string          `json:"location"`
	SalaryMin    json.RawMessage `json:"salary_min"`
	SalaryMax    json.RawMessage `json:"salary_max"`
	ContractType string          `json:"contract_type"`
	DateExpiry   string          `json:"date_expiry"`
}

// UpdateAdvertisementRequest is a partial update: only present fields are
// touched. CompanyID reassignment is accepted on the admin surface only.
type UpdateAdvertisementRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Location     *string         `json:"location"`
	SalaryMin    json.RawMessage `json:"salary_min"`
	SalaryMax    json.RawMessage `json:"salary_max"`
	ContractType *string         `json:"contract_type"`
	DateExpiry   *string         `json:"date_expiry"`
	CompanyID    *uint           `json:"company_id"`
}

type AdvertisementResponse struct {
	AdID         uint             `json:"ad_id"`
	CompanyID    uint             `json:"company_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Location     *string          `json:"location"`
	SalaryMin    *decimal.Decimal `json:"salary_min"`
	SalaryMax    *decimal.Decimal `json:"salary_max"`
	ContractType *string          `json:"contract_type"`
	DatePosted   string           `json:"date_posted"`
	DateExpiry   *string          `json:"date_expiry"`
}
