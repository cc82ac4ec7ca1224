// Package payment holds the presentation rules of the admin transactions
// table: search filtering, badge variants, customer names, amount
// formatting and provider deep links. Everything here is a pure derivation
// over an already-fetched snapshot.
package payment

import (
	"fmt"
	"strconv"
	"strings"

	"payment-dashboard-be/internal/constant"
	"payment-dashboard-be/internal/entity"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// FilterBySearch keeps payments whose transaction id, payment reference or
// customer email contains the term (case-insensitive substring). An empty
// term matches everything. Input ordering is preserved.
func (m *Manager) FilterBySearch(term string, payments []*entity.Payment) []*entity.Payment {
	if term == "" {
		return payments
	}
	needle := strings.ToLower(term)

	filtered := make([]*entity.Payment, 0, len(payments))
	for _, p := range payments {
		if m.matchesSearch(p, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *Manager) matchesSearch(p *entity.Payment, needle string) bool {
	if p == nil {
		return false
	}
	if p.TransactionId != nil && strings.Contains(strings.ToLower(*p.TransactionId), needle) {
		return true
	}
	if p.PaymentReference != nil && strings.Contains(strings.ToLower(*p.PaymentReference), needle) {
		return true
	}
	if p.Profile != nil && strings.Contains(strings.ToLower(p.Profile.Email), needle) {
		return true
	}
	return false
}

// StatusVariant maps a raw status string to a badge variant. Deliberately
// case-sensitive on the four literal spellings the dashboard has always
// used; aggregation buckets stay case-insensitive, and the two must not be
// unified without recoloring audit.
func (m *Manager) StatusVariant(status string) string {
	switch status {
	case "paid", "Completed":
		return constant.StatusVariantPrimary
	case "pending", "Pending":
		return constant.StatusVariantSecondary
	case "failed", "Failed":
		return constant.StatusVariantDestructive
	default:
		return constant.StatusVariantNeutral
	}
}

// CustomerDisplayName resolves what the Customer column shows. An orphaned
// user reference (no joined profile) renders as "Unknown", never an error.
func (m *Manager) CustomerDisplayName(p *entity.Payment) string {
	if p == nil || p.Profile == nil {
		return constant.UnknownCustomerName
	}

	var first, last string
	if p.Profile.FirstName != nil {
		first = strings.TrimSpace(*p.Profile.FirstName)
	}
	if p.Profile.LastName != nil {
		last = strings.TrimSpace(*p.Profile.LastName)
	}
	if name := strings.TrimSpace(first + " " + last); name != "" {
		return name
	}
	if p.Profile.Email != "" {
		return p.Profile.Email
	}
	return constant.UnknownCustomerName
}

// FormatCurrency renders an amount for the table. NGN gets the naira symbol
// with grouped thousands and no fixed decimals; every other code falls
// through to the dollar-with-two-decimals path, matching observed behavior.
func (m *Manager) FormatCurrency(amount float64, currency string) string {
	if currency == constant.CurrencyNigerianNaira {
		return "₦" + groupThousands(strconv.FormatFloat(amount, 'f', -1, 64))
	}
	return fmt.Sprintf("$%.2f", amount)
}

// ProviderLink builds the external dashboard URL for a transaction. Only
// Paystack payments with a reference are linkable.
func (m *Manager) ProviderLink(p *entity.Payment) *string {
	if p == nil || p.PaymentProvider == nil || *p.PaymentProvider != constant.ProviderPaystack {
		return nil
	}
	if p.PaymentReference == nil || *p.PaymentReference == "" {
		return nil
	}
	link := constant.PaystackTransactionsURL + *p.PaymentReference
	return &link
}

func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}
	return out
}
