package implementation

import (
	"context"
	"errors"

	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/mapper"
	"payment-dashboard-be/internal/model"
	"payment-dashboard-be/internal/repository/contract"
	"payment-dashboard-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	var models []*model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Profile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Profile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Profile{}, id).Error
}
