// FILE: internal/service/loading_service.go
package service

import (
	"errors"
	"time"

	"payment-dashboard-be/internal/config"
	"payment-dashboard-be/internal/dto"
	"payment-dashboard-be/internal/repository/memory"
	"payment-dashboard-be/pkg/loading"

	"github.com/google/uuid"
)

var ErrLoadingSessionNotFound = errors.New("loading session not found")

type ILoadingService interface {
	StartSession(req *dto.LoadingSessionRequest) *dto.LoadingSessionResponse
	GetSession(id string) (*dto.LoadingStateResponse, error)
	// UpdateSession changes the timeout of a running session. The elapsed
	// counter keeps going; only the timeout timer restarts.
	UpdateSession(id string, req *dto.LoadingSessionRequest) (*dto.LoadingSessionResponse, error)
	StopSession(id string) error
}

type loadingService struct {
	sessions *memory.LoadingSessionRepository
	defaults config.LoadingConfig
}

func NewLoadingService(sessions *memory.LoadingSessionRepository, defaults config.LoadingConfig) ILoadingService {
	return &loadingService{
		sessions: sessions,
		defaults: defaults,
	}
}

func (s *loadingService) StartSession(req *dto.LoadingSessionRequest) *dto.LoadingSessionResponse {
	sizePx := s.defaults.DefaultSizePx
	timeoutMs := s.defaults.DefaultTimeoutMs
	if req != nil {
		if req.Size != nil {
			sizePx = *req.Size
		}
		if req.TimeoutMs != nil {
			timeoutMs = *req.TimeoutMs
		}
	}

	session := &memory.LoadingSession{
		ID:        uuid.NewString(),
		SizePx:    sizePx,
		TimeoutMs: timeoutMs,
		Indicator: loading.NewIndicator(time.Duration(timeoutMs) * time.Millisecond),
	}
	s.sessions.Save(session)

	return &dto.LoadingSessionResponse{
		Id:        session.ID,
		Size:      session.SizePx,
		TimeoutMs: session.TimeoutMs,
	}
}

func (s *loadingService) GetSession(id string) (*dto.LoadingStateResponse, error) {
	session, found := s.sessions.Get(id)
	if !found {
		return nil, ErrLoadingSessionNotFound
	}

	state := session.Indicator.Snapshot()
	return &dto.LoadingStateResponse{
		Id:             session.ID,
		ElapsedSeconds: state.ElapsedSeconds,
		TimeoutReached: state.TimeoutReached,
	}, nil
}

func (s *loadingService) UpdateSession(id string, req *dto.LoadingSessionRequest) (*dto.LoadingSessionResponse, error) {
	session, found := s.sessions.Get(id)
	if !found {
		return nil, ErrLoadingSessionNotFound
	}

	if req != nil {
		if req.Size != nil {
			session.SizePx = *req.Size
		}
		if req.TimeoutMs != nil {
			session.TimeoutMs = *req.TimeoutMs
			session.Indicator.SetTimeout(time.Duration(*req.TimeoutMs) * time.Millisecond)
		}
	}
	s.sessions.Save(session)

	return &dto.LoadingSessionResponse{
		Id:        session.ID,
		Size:      session.SizePx,
		TimeoutMs: session.TimeoutMs,
	}, nil
}

func (s *loadingService) StopSession(id string) error {
	session, found := s.sessions.Get(id)
	if !found {
		return ErrLoadingSessionNotFound
	}
	session.Indicator.Stop()
	s.sessions.Delete(id)
	return nil
}
