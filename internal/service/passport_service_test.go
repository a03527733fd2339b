package service

import (
	"testing"

	"community-connect-be/internal/dto"
	"community-connect-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestPassportService(t *testing.T) IPassportService {
	t.Helper()
	content := newTestContentService(t)
	return NewPassportService(content, memory.NewSessionRepository(), "en")
}

func intPtr(v int) *int { return &v }

func TestPassportWizardFullWalk(t *testing.T) {
	s := newTestPassportService(t)

	start := s.Start("en")
	assert.NotEmpty(t, start.ApplicationId)
	assert.Equal(t, 1, start.Step)
	assert.Equal(t, 5, start.TotalSteps)
	assert.Len(t, start.Steps, 5)
	assert.NotEmpty(t, start.Documents)

	id := start.ApplicationId

	// Step 1: personal details
	state, err := s.Next("en", id, &dto.PassportAdvanceRequest{
		FullName:    "Tan Ah Kow",
		MyKadNumber: "480101-10-1234",
		Phone:       "012-3456789",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, state.Step)

	// Step 2: documents checklist is acknowledgment only
	state, err = s.Next("en", id, &dto.PassportAdvanceRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 3, state.Step)

	// Step 3: payment
	state, err = s.Next("en", id, &dto.PassportAdvanceRequest{PaymentOption: "fpx"})
	assert.NoError(t, err)
	assert.Equal(t, 4, state.Step)
	assert.Equal(t, "RM200", state.Fee)

	// Step 4: appointment
	state, err = s.Next("en", id, &dto.PassportAdvanceRequest{
		LocationIndex: intPtr(0),
		SlotIndex:     intPtr(1),
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, state.Step)
	assert.NotNil(t, state.Location)
	assert.NotEmpty(t, state.Slot)

	// Step 5: final summary; next completes without advancing further
	state, err = s.Next("en", id, &dto.PassportAdvanceRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 5, state.Step)
	assert.True(t, state.Completed)
}

func TestPassportStepValidation(t *testing.T) {
	s := newTestPassportService(t)
	id := s.Start("en").ApplicationId

	_, err := s.Next("en", id, &dto.PassportAdvanceRequest{FullName: "Tan Ah Kow"})
	assert.Error(t, err)

	state, err := s.Get("en", id)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Step)
}

func TestPassportAppointmentIndexBounds(t *testing.T) {
	s := newTestPassportService(t)
	id := s.Start("en").ApplicationId

	mustNext := func(req *dto.PassportAdvanceRequest) {
		t.Helper()
		_, err := s.Next("en", id, req)
		assert.NoError(t, err)
	}
	mustNext(&dto.PassportAdvanceRequest{FullName: "A B", MyKadNumber: "1", Phone: "2"})
	mustNext(&dto.PassportAdvanceRequest{})
	mustNext(&dto.PassportAdvanceRequest{PaymentOption: "counter"})

	_, err := s.Next("en", id, &dto.PassportAdvanceRequest{
		LocationIndex: intPtr(99),
		SlotIndex:     intPtr(0),
	})
	assert.Error(t, err)

	_, err = s.Next("en", id, &dto.PassportAdvanceRequest{
		LocationIndex: intPtr(0),
	})
	assert.Error(t, err)
}

func TestPassportBack(t *testing.T) {
	s := newTestPassportService(t)
	id := s.Start("en").ApplicationId

	_, err := s.Next("en", id, &dto.PassportAdvanceRequest{FullName: "A B", MyKadNumber: "1", Phone: "2"})
	assert.NoError(t, err)

	state, err := s.Back("en", id)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Step)

	// Back at the first step stays put.
	state, err = s.Back("en", id)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Step)
}

func TestPassportB40Fee(t *testing.T) {
	s := newTestPassportService(t)
	id := s.Start("en").ApplicationId

	state, err := s.Next("en", id, &dto.PassportAdvanceRequest{
		FullName:     "A B",
		MyKadNumber:  "1",
		Phone:        "2",
		B40Recipient: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "RM150", state.Fee)
}

func TestPassportUnknownApplication(t *testing.T) {
	s := newTestPassportService(t)

	_, err := s.Get("en", "no-such-application")
	assert.Error(t, err)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
