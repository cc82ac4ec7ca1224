package contract

import (
	"context"

	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	// FindAll returns payments with their profile join preloaded.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
