package constant

const (
	// Recognized status buckets (matched case-insensitively for aggregation)
	PaymentStatusPaid      = "paid"
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"

	// Badge variants for the admin table
	StatusVariantPrimary     = "primary"
	StatusVariantSecondary   = "secondary"
	StatusVariantDestructive = "destructive"
	StatusVariantNeutral     = "neutral"

	// Provider deep links are only built for Paystack
	ProviderPaystack        = "paystack"
	PaystackTransactionsURL = "https://dashboard.paystack.com/#/transactions/"
	UnknownCustomerName     = "Unknown"
	DefaultPaymentCurrency  = "USD"
	CurrencyNigerianNaira   = "NGN"
)
