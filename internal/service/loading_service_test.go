package service

import (
	"testing"
	"time"

	"payment-dashboard-be/internal/config"
	"payment-dashboard-be/internal/dto"
	"payment-dashboard-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadingServiceForTest() ILoadingService {
	sessions := memory.NewLoadingSessionRepository(time.Minute)
	return NewLoadingService(sessions, config.LoadingConfig{
		DefaultSizePx:    40,
		DefaultTimeoutMs: 10000,
		SessionTTLMins:   1,
	})
}

func intPtr(v int) *int {
	return &v
}

func TestLoadingServiceStartSessionDefaults(t *testing.T) {
	svc := newLoadingServiceForTest()

	res := svc.StartSession(&dto.LoadingSessionRequest{})
	require.NotEmpty(t, res.Id)
	assert.Equal(t, 40, res.Size)
	assert.Equal(t, 10000, res.TimeoutMs)

	state, err := svc.GetSession(res.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.ElapsedSeconds)
	assert.False(t, state.TimeoutReached)

	assert.NoError(t, svc.StopSession(res.Id))
}

func TestLoadingServiceStartSessionOverrides(t *testing.T) {
	svc := newLoadingServiceForTest()

	res := svc.StartSession(&dto.LoadingSessionRequest{
		TimeoutMs: intPtr(5000),
		Size:      intPtr(64),
	})
	assert.Equal(t, 64, res.Size)
	assert.Equal(t, 5000, res.TimeoutMs)

	assert.NoError(t, svc.StopSession(res.Id))
}

func TestLoadingServiceUpdateSession(t *testing.T) {
	svc := newLoadingServiceForTest()

	res := svc.StartSession(&dto.LoadingSessionRequest{TimeoutMs: intPtr(30000)})

	updated, err := svc.UpdateSession(res.Id, &dto.LoadingSessionRequest{TimeoutMs: intPtr(200)})
	require.NoError(t, err)
	assert.Equal(t, 200, updated.TimeoutMs)

	// The rearmed timer fires well before the original 30s deadline.
	time.Sleep(350 * time.Millisecond)

	state, err := svc.GetSession(res.Id)
	require.NoError(t, err)
	assert.True(t, state.TimeoutReached)
	assert.Equal(t, 0, state.ElapsedSeconds)

	assert.NoError(t, svc.StopSession(res.Id))
}

func TestLoadingServiceUnknownSession(t *testing.T) {
	svc := newLoadingServiceForTest()

	_, err := svc.GetSession("missing")
	assert.ErrorIs(t, err, ErrLoadingSessionNotFound)

	_, err = svc.UpdateSession("missing", &dto.LoadingSessionRequest{TimeoutMs: intPtr(100)})
	assert.ErrorIs(t, err, ErrLoadingSessionNotFound)

	assert.ErrorIs(t, svc.StopSession("missing"), ErrLoadingSessionNotFound)
}

func TestLoadingServiceStopIsTerminal(t *testing.T) {
	svc := newLoadingServiceForTest()

	res := svc.StartSession(nil)
	require.NoError(t, svc.StopSession(res.Id))

	_, err := svc.GetSession(res.Id)
	assert.ErrorIs(t, err, ErrLoadingSessionNotFound)
}
