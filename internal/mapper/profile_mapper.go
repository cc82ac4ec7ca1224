package mapper

import (
	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:        p.Id,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:        p.Id,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
