package dashboard

import (
	"testing"

	"payment-dashboard-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func pay(status string, amount float64) *entity.Payment {
	return &entity.Payment{Status: status, Amount: amount, Currency: "USD"}
}

func TestAggregateThreeBuckets(t *testing.T) {
	a := NewAggregator()

	stats := a.Aggregate([]*entity.Payment{
		pay("paid", 100),
		pay("Pending", 50),
		pay("failed", 25),
	})

	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 50.0, stats.PendingRevenue)
	assert.Equal(t, 25.0, stats.FailedRevenue)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.FailedCount)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, "33.3%", stats.SuccessRate)
}

func TestAggregateEmptyList(t *testing.T) {
	a := NewAggregator()

	stats := a.Aggregate(nil)

	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, "0%", stats.SuccessRate, "empty list must not divide by zero")
	assert.Zero(t, stats.TotalRevenue)
}

func TestAggregateCaseInsensitiveBuckets(t *testing.T) {
	a := NewAggregator()

	stats := a.Aggregate([]*entity.Payment{
		pay("PAID", 10),
		pay("Completed", 20),
		pay("completed", 30),
		pay("PENDING", 5),
		pay("Failed", 2),
	})

	assert.Equal(t, 60.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.CompletedCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.FailedCount)
	assert.Equal(t, "60.0%", stats.SuccessRate)
}

func TestAggregateUnrecognizedStatuses(t *testing.T) {
	a := NewAggregator()

	stats := a.Aggregate([]*entity.Payment{
		pay("paid", 100),
		pay("refunded", 40),
		pay("chargeback", 10),
	})

	// Unrecognized statuses count toward the total but no bucket.
	assert.Equal(t, 3, stats.TotalCount)
	assert.LessOrEqual(t, stats.CompletedCount+stats.PendingCount+stats.FailedCount, stats.TotalCount)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, "33.3%", stats.SuccessRate)
}

func TestAggregateMixedCurrenciesSumWithoutConversion(t *testing.T) {
	a := NewAggregator()

	ngn := pay("paid", 5000)
	ngn.Currency = "NGN"
	stats := a.Aggregate([]*entity.Payment{pay("completed", 100), ngn})

	assert.Equal(t, 5100.0, stats.TotalRevenue)
	assert.Equal(t, "100.0%", stats.SuccessRate)
}
