package service

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/repository/contract"
	"community-connect-be/pkg/accessibility"
)

type IAccessibilityService interface {
	Get(sessionId string) *dto.AccessibilityResponse
	Adjust(sessionId string, req *dto.AccessibilityAdjustRequest) *dto.AccessibilityResponse
	// AdjustFont applies a voice-command font delta to the layout surface.
	AdjustFont(sessionId string, delta int)
}

type accessibilityService struct {
	sessions        contract.SessionRepository
	defaultLanguage string
}

func NewAccessibilityService(sessions contract.SessionRepository, defaultLanguage string) IAccessibilityService {
	return &accessibilityService{
		sessions:        sessions,
		defaultLanguage: defaultLanguage,
	}
}

func (s *accessibilityService) Get(sessionId string) *dto.AccessibilityResponse {
	session := s.sessions.GetOrCreate(sessionId, s.defaultLanguage)
	return s.respond(sessionId, session.LayoutPrefs, session.PagePrefs)
}

func (s *accessibilityService) Adjust(sessionId string, req *dto.AccessibilityAdjustRequest) *dto.AccessibilityResponse {
	session := s.sessions.GetOrCreate(sessionId, s.defaultLanguage)

	delta := 1
	if req.Action == "decrease" {
		delta = -1
	}

	prefs := &session.LayoutPrefs
	bounds := accessibility.LayoutBounds
	if req.Surface == "page" {
		prefs = &session.PagePrefs
		bounds = accessibility.PageBounds
	}

	switch {
	case req.Action == "reset":
		*prefs = accessibility.NewPrefs(bounds)
	case req.Control == "zoom":
		// Zoom is sitewide; the surface only selects a font scale. It lives
		// on the layout prefs so the response reports one value.
		session.LayoutPrefs = session.LayoutPrefs.AdjustZoom(delta)
	default:
		*prefs = prefs.AdjustFont(delta)
	}

	s.sessions.Save(session)
	return s.respond(sessionId, session.LayoutPrefs, session.PagePrefs)
}

func (s *accessibilityService) AdjustFont(sessionId string, delta int) {
	session := s.sessions.GetOrCreate(sessionId, s.defaultLanguage)
	session.LayoutPrefs = session.LayoutPrefs.AdjustFont(delta)
	s.sessions.Save(session)
}

func (s *accessibilityService) respond(sessionId string, layout, page accessibility.Prefs) *dto.AccessibilityResponse {
	return &dto.AccessibilityResponse{
		SessionId: sessionId,
		Layout:    fontState(layout),
		Page:      fontState(page),
		Zoom:      layout.ZoomLevel,
	}
}

func fontState(p accessibility.Prefs) dto.FontState {
	return dto.FontState{
		FontSizePx: p.FontSizePx,
		Min:        p.Bounds.Min,
		Max:        p.Bounds.Max,
		Step:       p.Bounds.Step,
	}
}
