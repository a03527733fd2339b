package contract

import "community-connect-be/pkg/store"

type SessionRepository interface {
	Save(session *store.VisitorSession)
	Get(sessionID string) (*store.VisitorSession, bool)
	GetOrCreate(sessionID, language string) *store.VisitorSession
	Delete(sessionID string)
}
