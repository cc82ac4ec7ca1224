package unitofwork

import (
	"context"

	"payment-dashboard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PaymentRepository() contract.PaymentRepository
	ProfileRepository() contract.ProfileRepository
}
