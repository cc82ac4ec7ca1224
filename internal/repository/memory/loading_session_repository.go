package memory

import (
	"time"

	"payment-dashboard-be/pkg/loading"

	"github.com/patrickmn/go-cache"
)

// LoadingSession pairs a running indicator with its visual configuration.
type LoadingSession struct {
	ID        string
	SizePx    int
	TimeoutMs int
	Indicator *loading.Indicator
}

// LoadingSessionRepository keeps active indicator sessions in memory.
// Sessions the client never tears down expire after the TTL; eviction stops
// the indicator so its timers cannot leak.
type LoadingSessionRepository struct {
	cache *cache.Cache
}

func NewLoadingSessionRepository(ttl time.Duration) *LoadingSessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*LoadingSession); ok {
			s.Indicator.Stop()
		}
	})
	return &LoadingSessionRepository{
		cache: c,
	}
}

func (r *LoadingSessionRepository) Save(session *LoadingSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *LoadingSessionRepository) Get(sessionID string) (*LoadingSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*LoadingSession), true
	}
	return nil, false
}

func (r *LoadingSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
