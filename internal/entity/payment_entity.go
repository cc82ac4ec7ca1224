// FILE: internal/entity/payment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one transaction row from the external ledger, joined with the
// owning profile when that reference still resolves. Optional columns are
// pointers; display code must tolerate every one of them being nil.
type Payment struct {
	Id               uuid.UUID
	Amount           float64
	Status           string
	PaymentMethod    string
	CreatedAt        time.Time
	TransactionId    *string
	PaymentReference *string
	PaymentProvider  *string
	Currency         string
	UserId           *uuid.UUID
	Profile          *Profile
}
