package service

import (
	"context"
	"fmt"

	"community-connect-be/internal/dto"
	"community-connect-be/internal/pkg/mailer"
	"community-connect-be/pkg/events"
	pktNats "community-connect-be/pkg/nats"

	"github.com/google/uuid"
)

type IAssistanceService interface {
	Submit(ctx context.Context, req *dto.AssistanceRequest) (*dto.AssistanceResponse, error)
}

type assistanceService struct {
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAssistanceService(emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAssistanceService {
	return &assistanceService{
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *assistanceService) Submit(ctx context.Context, req *dto.AssistanceRequest) (*dto.AssistanceResponse, error) {
	requestId := uuid.New().String()

	// The volunteer inbox is the actual delivery channel; a mail failure
	// fails the request so the visitor knows nobody is calling back.
	err := s.emailService.SendAssistanceRequest(requestId, req.Name, req.Phone, req.Topic, req.Message)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewAssistanceRequested(requestId, req.Name, req.Phone, req.Topic)
		// We log error but don't fail the request as the event stream is auxiliary
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish ASSISTANCE_REQUESTED event: %v\n", err)
		}
	}

	return &dto.AssistanceResponse{
		RequestId: requestId,
		Status:    "received",
	}, nil
}
