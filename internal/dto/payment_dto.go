// FILE: internal/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CustomerResponse is the joined profile sub-record; absent entirely when
// the owning identity could not be resolved.
type CustomerResponse struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// PaymentListResponse is one row of the admin transactions table, carrying
// both raw columns and the derived display values so the client renders
// without its own formatting rules.
type PaymentListResponse struct {
	Id               uuid.UUID         `json:"id"`
	Amount           float64           `json:"amount"`
	AmountDisplay    string            `json:"amount_display"`
	Currency         string            `json:"currency"`
	Status           string            `json:"status"`
	StatusVariant    string            `json:"status_variant"`
	PaymentMethod    string            `json:"payment_method"`
	CreatedAt        time.Time         `json:"created_at"`
	TransactionId    *string           `json:"transaction_id,omitempty"`
	PaymentReference *string           `json:"payment_reference,omitempty"`
	PaymentProvider  *string           `json:"payment_provider,omitempty"`
	CustomerName     string            `json:"customer_name"`
	Customer         *CustomerResponse `json:"customer,omitempty"`
	ProviderLink     *string           `json:"provider_link,omitempty"`
}

// PaymentStatsResponse feeds the summary cards. Revenue sums mix currencies
// without conversion (documented simplification, not a bug to fix here).
type PaymentStatsResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	PendingRevenue float64 `json:"pending_revenue"`
	FailedRevenue  float64 `json:"failed_revenue"`
	CompletedCount int     `json:"completed_count"`
	PendingCount   int     `json:"pending_count"`
	FailedCount    int     `json:"failed_count"`
	TotalCount     int     `json:"total_count"`
	SuccessRate    string  `json:"success_rate"`
}
