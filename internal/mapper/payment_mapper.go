package mapper

import (
	"payment-dashboard-be/internal/constant"
	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	currency := p.Currency
	if currency == "" {
		// Records written before the currency column existed default to USD.
		currency = constant.DefaultPaymentCurrency
	}
	return &entity.Payment{
		Id:               p.Id,
		Amount:           p.Amount,
		Status:           p.Status,
		PaymentMethod:    p.PaymentMethod,
		CreatedAt:        p.CreatedAt,
		TransactionId:    p.TransactionId,
		PaymentReference: p.PaymentReference,
		PaymentProvider:  p.PaymentProvider,
		Currency:         currency,
		UserId:           p.UserId,
		Profile:          m.profileToEntity(p.Profile),
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:               p.Id,
		Amount:           p.Amount,
		Status:           p.Status,
		PaymentMethod:    p.PaymentMethod,
		CreatedAt:        p.CreatedAt,
		TransactionId:    p.TransactionId,
		PaymentReference: p.PaymentReference,
		PaymentProvider:  p.PaymentProvider,
		Currency:         p.Currency,
		UserId:           p.UserId,
	}
}

func (m *PaymentMapper) profileToEntity(p *model.Profile) *entity.Profile {
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
