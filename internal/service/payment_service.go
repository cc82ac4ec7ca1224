// FILE: internal/service/payment_service.go
package service

import (
	"context"

	"payment-dashboard-be/internal/dto"
	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/pkg/logger"
	"payment-dashboard-be/internal/repository/specification"
	"payment-dashboard-be/internal/repository/unitofwork"
	"payment-dashboard-be/pkg/admin/dashboard"
	adminpayment "payment-dashboard-be/pkg/admin/payment"
	"payment-dashboard-be/pkg/events"
)

const (
	EventPaymentsListed      = "PAYMENTS_LISTED"
	EventPaymentsFetchFailed = "PAYMENTS_FETCH_FAILED"
)

type IPaymentService interface {
	// ListPayments performs exactly one fetch (newest first, profiles
	// joined), then filters in memory. No pagination, no retry.
	ListPayments(ctx context.Context, search string) ([]*dto.PaymentListResponse, error)
	GetStats(ctx context.Context) (*dto.PaymentStatsResponse, error)
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	manager    *adminpayment.Manager
	aggregator *dashboard.Aggregator
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	manager *adminpayment.Manager,
	aggregator *dashboard.Aggregator,
	publisher IPublisherService,
	logger logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		manager:    manager,
		aggregator: aggregator,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *paymentService) fetchAll(ctx context.Context) ([]*entity.Payment, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payments, err := uow.PaymentRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		s.logger.Error("payment", "Error fetching payments", map[string]interface{}{
			"error": err.Error(),
		})
		if s.publisher != nil {
			_ = s.publisher.Publish(events.New(EventPaymentsFetchFailed, map[string]interface{}{
				"error": err.Error(),
			}))
		}
		return nil, err
	}
	return payments, nil
}

func (s *paymentService) ListPayments(ctx context.Context, search string) ([]*dto.PaymentListResponse, error) {
	payments, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.manager.FilterBySearch(search, payments)

	res := make([]*dto.PaymentListResponse, 0, len(filtered))
	for _, p := range filtered {
		res = append(res, s.toListResponse(p))
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(events.New(EventPaymentsListed, map[string]interface{}{
			"total":    len(payments),
			"returned": len(filtered),
			"search":   search,
		}))
	}
	return res, nil
}

func (s *paymentService) GetStats(ctx context.Context) (*dto.PaymentStatsResponse, error) {
	payments, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(payments), nil
}

func (s *paymentService) toListResponse(p *entity.Payment) *dto.PaymentListResponse {
	res := &dto.PaymentListResponse{
		Id:               p.Id,
		Amount:           p.Amount,
		AmountDisplay:    s.manager.FormatCurrency(p.Amount, p.Currency),
		Currency:         p.Currency,
		Status:           p.Status,
		StatusVariant:    s.manager.StatusVariant(p.Status),
		PaymentMethod:    p.PaymentMethod,
		CreatedAt:        p.CreatedAt,
		TransactionId:    p.TransactionId,
		PaymentReference: p.PaymentReference,
		PaymentProvider:  p.PaymentProvider,
		CustomerName:     s.manager.CustomerDisplayName(p),
		ProviderLink:     s.manager.ProviderLink(p),
	}
	if p.Profile != nil {
		res.Customer = &dto.CustomerResponse{
			Email:     p.Profile.Email,
			FirstName: p.Profile.FirstName,
			LastName:  p.Profile.LastName,
		}
	}
	return res
}
