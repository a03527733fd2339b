package service

import (
	"context"
	"encoding/json"
	"fmt"

	"community-connect-be/internal/config"
	"community-connect-be/internal/dto"
	"community-connect-be/internal/pkg/logger"
	"community-connect-be/pkg/events"
	pktNats "community-connect-be/pkg/nats"
	"community-connect-be/pkg/voice"
)

// IVoiceService opens one voice connection per websocket client. The browser
// owns the microphone; the server side sees capture as a stream of cumulative
// transcript frames and answers with feedback and command frames.
type IVoiceService interface {
	Enabled() bool
	Open(sessionId string, emit func(frame interface{})) IVoiceConnection
}

// IVoiceConnection is the per-client handle the websocket layer drives.
type IVoiceConnection interface {
	Start()
	Transcript(text string)
	Stop()
	// Close tears the session down when the socket goes away.
	Close()
}

type voiceService struct {
	cfg              config.VoiceConfig
	accessibility    IAccessibilityService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewVoiceService(
	cfg config.VoiceConfig,
	accessibility IAccessibilityService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IVoiceService {
	return &voiceService{
		cfg:              cfg,
		accessibility:    accessibility,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *voiceService) Enabled() bool {
	return s.cfg.Enabled
}

// remoteSource stands in for the browser microphone. Availability is the
// feature flag; start/stop are acknowledged but the capture itself happens
// client-side.
type remoteSource struct {
	enabled bool
}

func (r remoteSource) Available() bool { return r.enabled }
func (r remoteSource) Start() error { return nil }
func (r remoteSource) Stop() {}

type voiceConnection struct {
	sessionId  string
	controller *voice.Controller
	service    *voiceService
	emit       func(frame interface{})
}

func (s *voiceService) Open(sessionId string, emit func(frame interface{})) IVoiceConnection {
	conn := &voiceConnection{
		sessionId: sessionId,
		service:   s,
		emit:      emit,
	}

	cfg := voice.Config{
		SilenceWindow: s.cfg.SilenceWindow,
		ActionDelay:   s.cfg.ActionDelay,
		DisplayWindow: s.cfg.DisplayWindow,
		ClearDelay:    s.cfg.ClearDelay,
	}
	conn.controller = voice.NewController(
		remoteSource{enabled: s.cfg.Enabled},
		cfg,
		conn.onCommand,
		conn.onChange,
	)
	conn.controller.OnResolved(conn.onResolved)
	return conn
}

func (c *voiceConnection) Start() {
	c.controller.Start()
}

func (c *voiceConnection) Transcript(text string) {
	c.controller.OnTranscript(text)
}

func (c *voiceConnection) Stop() {
	c.controller.Stop()
}

func (c *voiceConnection) Close() {
	c.controller.Stop()
}

func (c *voiceConnection) onChange(snap voice.Session) {
	fb := voice.DeriveFeedback(snap)
	c.emit(dto.VoiceFeedbackFrame{
		Type:  dto.VoiceFrameFeedback,
		Phase: string(fb.Phase),
		Text:  fb.Text,
	})
}

// onResolved reports transcripts the classifier could not place, so keyword
// coverage gaps show up in usage reports.
func (c *voiceConnection) onResolved(cmd voice.Command, transcript string) {
	if cmd.Type != voice.CommandUnrecognized {
		return
	}
	s := c.service

	payload := dto.PublishVoiceUsageMessage{
		SessionId:   c.sessionId,
		CommandType: string(cmd.Type),
		Transcript:  transcript,
	}
	payloadJson, err := json.Marshal(payload)
	if err == nil {
		if err := s.publisherService.Publish(context.Background(), payloadJson); err != nil {
			fmt.Printf("[WARN] Failed to publish voice usage message: %v\n", err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewVoiceUnrecognized(c.sessionId, transcript)
		if err := s.eventPublisher.Publish(context.Background(), evt); err != nil {
			fmt.Printf("[WARN] Failed to publish VOICE_UNRECOGNIZED event: %v\n", err)
		}
	}
}

func (c *voiceConnection) onCommand(cmd voice.Command) {
	s := c.service

	switch cmd.Type {
	case voice.CommandNavigate:
		c.emit(dto.VoiceNavigateFrame{
			Type:         dto.VoiceFrameNavigate,
			Route:        cmd.Route,
			Confirmation: cmd.Confirmation,
		})
	case voice.CommandFontSize:
		s.accessibility.AdjustFont(c.sessionId, cmd.FontDelta)
		c.emit(dto.VoiceFontSizeFrame{
			Type:         dto.VoiceFrameFontSize,
			Delta:        cmd.FontDelta,
			Confirmation: cmd.Confirmation,
		})
	default:
		return
	}

	s.logger.Info("voice", "command executed", map[string]interface{}{
		"session_id": c.sessionId,
		"type":       string(cmd.Type),
		"route":      cmd.Route,
	})

	payload := dto.PublishVoiceUsageMessage{
		SessionId:   c.sessionId,
		CommandType: string(cmd.Type),
		Route:       cmd.Route,
	}
	payloadJson, err := json.Marshal(payload)
	if err == nil {
		if err := s.publisherService.Publish(context.Background(), payloadJson); err != nil {
			fmt.Printf("[WARN] Failed to publish voice usage message: %v\n", err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewVoiceCommand(c.sessionId, string(cmd.Type), cmd.Route)
		// We log error but don't fail the command as the event stream is auxiliary
		if err := s.eventPublisher.Publish(context.Background(), evt); err != nil {
			fmt.Printf("[WARN] Failed to publish VOICE_COMMAND event: %v\n", err)
		}
	}
}
