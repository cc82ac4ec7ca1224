package dashboard

import (
	"fmt"
	"strings"

	"payment-dashboard-be/internal/constant"
	"payment-dashboard-be/internal/dto"
	"payment-dashboard-be/internal/entity"
)

// Aggregator computes the summary-card statistics over a payment snapshot.
type Aggregator struct{}

// NewAggregator creates a new dashboard aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate partitions payments into the three recognized buckets
// (case-insensitive) in a single pass. Statuses outside the buckets count
// toward the total but no partition, so the success rate denominator is
// always the full list.
func (a *Aggregator) Aggregate(payments []*entity.Payment) *dto.PaymentStatsResponse {
	stats := &dto.PaymentStatsResponse{
		TotalCount:  len(payments),
		SuccessRate: "0%",
	}

	for _, p := range payments {
		if p == nil {
			continue
		}
		switch strings.ToLower(p.Status) {
		case constant.PaymentStatusPaid, constant.PaymentStatusCompleted:
			stats.TotalRevenue += p.Amount
			stats.CompletedCount++
		case constant.PaymentStatusPending:
			stats.PendingRevenue += p.Amount
			stats.PendingCount++
		case constant.PaymentStatusFailed:
			stats.FailedRevenue += p.Amount
			stats.FailedCount++
		}
	}

	if stats.TotalCount > 0 {
		rate := float64(stats.CompletedCount) / float64(stats.TotalCount) * 100
		stats.SuccessRate = fmt.Sprintf("%.1f%%", rate)
	}

	return stats
}
