package memory

import (
	"community-connect-be/pkg/store"
	"time"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.VisitorSession) {
	session.Touch()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.VisitorSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.VisitorSession), true
	}
	return nil, false
}

func (r *SessionRepository) GetOrCreate(sessionID, language string) *store.VisitorSession {
	if session, found := r.Get(sessionID); found {
		return session
	}
	session := store.NewVisitorSession(sessionID, language)
	r.Save(session)
	return session
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
