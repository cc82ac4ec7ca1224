package contract

import (
	"context"

	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
