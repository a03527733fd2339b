package service

import (
	"context"
	"encoding/json"
	"sync"

	"community-connect-be/internal/dto"
	"community-connect-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the voice usage topic in the background and keeps
// running counts per command type and route. The counts feed the usage
// report endpoint.
type IConsumerService interface {
	Consume(ctx context.Context) error
	UsageReport() *dto.VoiceUsageReport
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger

	mu           sync.Mutex
	byCommand    map[string]int
	byRoute      map[string]int
	unrecognized []string
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
		byCommand: make(map[string]int),
		byRoute:   make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.PublishVoiceUsageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("consumer", "dropping malformed usage message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	cs.mu.Lock()
	cs.byCommand[payload.CommandType]++
	if payload.Route != "" {
		cs.byRoute[payload.Route]++
	}
	if payload.Transcript != "" {
		// Cap the sample so a chatty session cannot grow it unbounded.
		if len(cs.unrecognized) < 50 {
			cs.unrecognized = append(cs.unrecognized, payload.Transcript)
		}
	}
	cs.mu.Unlock()

	cs.logger.Info("consumer", "voice usage recorded", map[string]interface{}{
		"session_id":   payload.SessionId,
		"command_type": payload.CommandType,
		"route":        payload.Route,
	})
}

func (cs *consumerService) UsageReport() *dto.VoiceUsageReport {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	report := &dto.VoiceUsageReport{
		ByCommand:    make(map[string]int, len(cs.byCommand)),
		ByRoute:      make(map[string]int, len(cs.byRoute)),
		Unrecognized: append([]string(nil), cs.unrecognized...),
	}
	for k, v := range cs.byCommand {
		report.ByCommand[k] = v
	}
	for k, v := range cs.byRoute {
		report.ByRoute[k] = v
	}
	return report
}
