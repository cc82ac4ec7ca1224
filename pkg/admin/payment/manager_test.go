package payment

import (
	"testing"

	"payment-dashboard-be/internal/entity"

	"github.com/google/uuid"
)

func strPtr(s string) *string {
	return &s
}

func paymentWith(txID, ref, email *string) *entity.Payment {
	p := &entity.Payment{
		Id:               uuid.New(),
		TransactionId:    txID,
		PaymentReference: ref,
	}
	if email != nil {
		p.Profile = &entity.Profile{Id: uuid.New(), Email: *email}
	}
	return p
}

func TestFilterBySearch(t *testing.T) {
	m := NewManager()

	payments := []*entity.Payment{
		paymentWith(strPtr("TXN-001"), strPtr("ref_alpha"), strPtr("alice@shop.test")),
		paymentWith(nil, strPtr("REF_BETA"), strPtr("bob@shop.test")),
		paymentWith(strPtr("TXN-777"), nil, nil),
	}

	tests := []struct {
		name    string
		term    string
		wantIdx []int
	}{
		{name: "empty term matches everything", term: "", wantIdx: []int{0, 1, 2}},
		{name: "transaction id match", term: "txn-001", wantIdx: []int{0}},
		{name: "reference match case-insensitive", term: "ref_beta", wantIdx: []int{1}},
		{name: "email match", term: "alice@", wantIdx: []int{0}},
		{name: "shared substring keeps order", term: "txn", wantIdx: []int{0, 2}},
		{name: "no match", term: "zzz", wantIdx: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.FilterBySearch(tt.term, payments)
			if len(got) != len(tt.wantIdx) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.wantIdx))
			}
			for i, idx := range tt.wantIdx {
				if got[i] != payments[idx] {
					t.Errorf("result[%d] = %v, want payments[%d]", i, got[i].Id, idx)
				}
			}
		})
	}
}

func TestFilterBySearchIdempotent(t *testing.T) {
	m := NewManager()
	payments := []*entity.Payment{
		paymentWith(strPtr("TXN-001"), nil, nil),
		paymentWith(strPtr("TXN-002"), nil, nil),
	}

	once := m.FilterBySearch("txn", payments)
	twice := m.FilterBySearch("txn", once)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("result order changed at %d", i)
		}
	}
}

func TestStatusVariant(t *testing.T) {
	m := NewManager()

	tests := []struct {
		status string
		want   string
	}{
		{"paid", "primary"},
		{"Completed", "primary"},
		{"pending", "secondary"},
		{"Pending", "secondary"},
		{"failed", "destructive"},
		{"Failed", "destructive"},
		// case-sensitive on purpose: these spellings are NOT recognized
		{"Paid", "neutral"},
		{"completed", "neutral"},
		{"PENDING", "neutral"},
		{"refunded", "neutral"},
		{"", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := m.StatusVariant(tt.status); got != tt.want {
				t.Errorf("StatusVariant(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestCustomerDisplayName(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name    string
		profile *entity.Profile
		want    string
	}{
		{name: "no profile", profile: nil, want: "Unknown"},
		{
			name:    "full name",
			profile: &entity.Profile{Email: "jane@x.test", FirstName: strPtr("Jane"), LastName: strPtr("Doe")},
			want:    "Jane Doe",
		},
		{
			name:    "first name only",
			profile: &entity.Profile{Email: "jane@x.test", FirstName: strPtr("Jane")},
			want:    "Jane",
		},
		{
			name:    "last name only",
			profile: &entity.Profile{Email: "jane@x.test", LastName: strPtr("Doe")},
			want:    "Doe",
		},
		{
			name:    "empty names fall back to email",
			profile: &entity.Profile{Email: "jane@x.test", FirstName: strPtr("  "), LastName: strPtr("")},
			want:    "jane@x.test",
		},
		{
			name:    "nil names fall back to email",
			profile: &entity.Profile{Email: "jane@x.test"},
			want:    "jane@x.test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entity.Payment{Profile: tt.profile}
			got := m.CustomerDisplayName(p)
			if got != tt.want {
				t.Errorf("CustomerDisplayName() = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Error("display name must never be empty")
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	m := NewManager()

	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.5, "NGN", "₦1,234.5"},
		{1234.5, "USD", "$1234.50"},
		{1234567.0, "NGN", "₦1,234,567"},
		{0, "NGN", "₦0"},
		{0, "USD", "$0.00"},
		{99.9, "EUR", "$99.90"}, // unhandled codes fall through to the dollar path
		{100, "USD", "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := m.FormatCurrency(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

func TestProviderLink(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name     string
		provider *string
		ref      *string
		want     *string
	}{
		{
			name:     "paystack with reference",
			provider: strPtr("paystack"),
			ref:      strPtr("ref_123"),
			want:     strPtr("https://dashboard.paystack.com/#/transactions/ref_123"),
		},
		{name: "paystack without reference", provider: strPtr("paystack"), ref: nil, want: nil},
		{name: "paystack with empty reference", provider: strPtr("paystack"), ref: strPtr(""), want: nil},
		{name: "other provider", provider: strPtr("stripe"), ref: strPtr("ref_123"), want: nil},
		{name: "no provider", provider: nil, ref: strPtr("ref_123"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entity.Payment{PaymentProvider: tt.provider, PaymentReference: tt.ref}
			got := m.ProviderLink(p)
			switch {
			case got == nil && tt.want != nil:
				t.Errorf("ProviderLink() = nil, want %q", *tt.want)
			case got != nil && tt.want == nil:
				t.Errorf("ProviderLink() = %q, want nil", *got)
			case got != nil && tt.want != nil && *got != *tt.want:
				t.Errorf("ProviderLink() = %q, want %q", *got, *tt.want)
			}
		})
	}
}
