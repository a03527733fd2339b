package store

import (
	"time"

	"community-connect-be/pkg/accessibility"
)

// VisitorSession holds the per-visitor state that survives across
// requests: accessibility preferences and an in-progress passport
// renewal application, if any.
type VisitorSession struct {
	ID            string
	Language      string
	LayoutPrefs   accessibility.Prefs
	PagePrefs     accessibility.Prefs
	Passport      *PassportApplication
	LastUpdatedAt time.Time
}

// PassportApplication is the wizard state for a passport renewal.
// Step is 1-based; the wizard has five steps.
type PassportApplication struct {
	ID            string
	Step          int
	FullName      string
	MyKadNumber   string
	Phone         string
	Email         string
	B40Recipient  bool
	LocationIndex int
	SlotIndex     int
	PaymentOption string
	Completed     bool
	CreatedAt     time.Time
}

func NewVisitorSession(id, language string) *VisitorSession {
	return &VisitorSession{
		ID:            id,
		Language:      language,
		LayoutPrefs:   accessibility.NewPrefs(accessibility.LayoutBounds),
		PagePrefs:     accessibility.NewPrefs(accessibility.PageBounds),
		LastUpdatedAt: time.Now(),
	}
}

func (s *VisitorSession) Touch() {
	s.LastUpdatedAt = time.Now()
}
