package service

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/mapper"
	"community-connect-be/internal/repository/contract"
	"community-connect-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// The wizard walks the five renewal steps in order: fill form, documents
// checklist, payment, appointment, office visit. Neither payment nor booking
// reaches a real backend; the wizard only prepares the visitor for the
// official portal.
const passportTotalSteps = 5

type IPassportService interface {
	Start(lang string) *dto.PassportStartResponse
	Get(lang, applicationId string) (*dto.PassportStateResponse, error)
	Next(lang, applicationId string, req *dto.PassportAdvanceRequest) (*dto.PassportStateResponse, error)
	Back(lang, applicationId string) (*dto.PassportStateResponse, error)
	Locations(lang string) *dto.PassportLocationsResponse
}

type passportService struct {
	content         IContentService
	sessions        contract.SessionRepository
	mapper          *mapper.ContentMapper
	defaultLanguage string
}

func NewPassportService(content IContentService, sessions contract.SessionRepository, defaultLanguage string) IPassportService {
	return &passportService{
		content:         content,
		sessions:        sessions,
		mapper:          mapper.NewContentMapper(),
		defaultLanguage: defaultLanguage,
	}
}

func (s *passportService) Start(lang string) *dto.PassportStartResponse {
	resolved := s.content.ResolveLanguage(lang)
	pack := s.content.Pack(resolved)

	app := &store.PassportApplication{
		ID:   uuid.New().String(),
		Step: 1,
	}
	session := s.sessions.GetOrCreate(app.ID, resolved)
	session.Passport = app
	s.sessions.Save(session)

	return &dto.PassportStartResponse{
		ApplicationId: app.ID,
		Step:          app.Step,
		TotalSteps:    passportTotalSteps,
		Steps:         pack.PassportSteps,
		Documents:     pack.PassportDocuments,
	}
}

func (s *passportService) Get(lang, applicationId string) (*dto.PassportStateResponse, error) {
	app, err := s.lookup(applicationId)
	if err != nil {
		return nil, err
	}
	return s.respond(lang, app), nil
}

func (s *passportService) Next(lang, applicationId string, req *dto.PassportAdvanceRequest) (*dto.PassportStateResponse, error) {
	app, err := s.lookup(applicationId)
	if err != nil {
		return nil, err
	}
	resolved := s.content.ResolveLanguage(lang)
	pack := s.content.Pack(resolved)

	switch app.Step {
	case 1: // Fill Online Form
		if req.FullName == "" || req.MyKadNumber == "" || req.Phone == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "full_name, mykad_number and phone are required")
		}
		app.FullName = req.FullName
		app.MyKadNumber = req.MyKadNumber
		app.Phone = req.Phone
		app.Email = req.Email
		app.B40Recipient = req.B40Recipient
	case 2: // Upload Documents checklist, acknowledgment only
	case 3: // Make Payment
		if req.PaymentOption == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "payment_option is required")
		}
		app.PaymentOption = req.PaymentOption
	case 4: // Book Appointment
		if req.LocationIndex == nil || *req.LocationIndex < 0 || *req.LocationIndex >= len(pack.PassportLocations) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "location_index is out of range")
		}
		if req.SlotIndex == nil || *req.SlotIndex < 0 || *req.SlotIndex >= len(pack.Appointments.Slots) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "slot_index is out of range")
		}
		app.LocationIndex = *req.LocationIndex
		app.SlotIndex = *req.SlotIndex
	case passportTotalSteps: // Visit Immigration Office
		app.Completed = true
	}

	if app.Step < passportTotalSteps {
		app.Step++
	}
	s.persist(app)
	return s.respond(resolved, app), nil
}

func (s *passportService) Back(lang, applicationId string) (*dto.PassportStateResponse, error) {
	app, err := s.lookup(applicationId)
	if err != nil {
		return nil, err
	}
	if app.Step > 1 {
		app.Step--
	}
	s.persist(app)
	return s.respond(lang, app), nil
}

func (s *passportService) Locations(lang string) *dto.PassportLocationsResponse {
	resolved := s.content.ResolveLanguage(lang)
	pack := s.content.Pack(resolved)
	return &dto.PassportLocationsResponse{
		Language:  resolved,
		Locations: s.mapper.ToPassportLocations(pack.PassportLocations),
	}
}

func (s *passportService) lookup(applicationId string) (*store.PassportApplication, error) {
	session, found := s.sessions.Get(applicationId)
	if !found || session.Passport == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "passport application not found")
	}
	return session.Passport, nil
}

func (s *passportService) persist(app *store.PassportApplication) {
	session := s.sessions.GetOrCreate(app.ID, s.defaultLanguage)
	session.Passport = app
	s.sessions.Save(session)
}

func (s *passportService) respond(lang string, app *store.PassportApplication) *dto.PassportStateResponse {
	resolved := s.content.ResolveLanguage(lang)
	pack := s.content.Pack(resolved)

	res := &dto.PassportStateResponse{
		ApplicationId: app.ID,
		Step:          app.Step,
		TotalSteps:    passportTotalSteps,
		FullName:      app.FullName,
		MyKadNumber:   app.MyKadNumber,
		Phone:         app.Phone,
		Email:         app.Email,
		B40Recipient:  app.B40Recipient,
		PaymentOption: app.PaymentOption,
		Fee:           passportFee(app),
		Completed:     app.Completed,
	}
	if app.Step >= 1 && app.Step <= len(pack.PassportSteps) {
		res.StepLabel = pack.PassportSteps[app.Step-1]
	}
	if app.Step > 4 && app.LocationIndex < len(pack.PassportLocations) {
		loc := s.mapper.ToPassportLocation(pack.PassportLocations[app.LocationIndex])
		res.Location = &loc
		if app.SlotIndex < len(pack.Appointments.Slots) {
			res.Slot = pack.Appointments.Slots[app.SlotIndex]
		}
	}
	return res
}

// Renewal is RM200, reduced to RM150 for B40 recipients. The 60+ rate exists
// too but the wizard never asks for age, so it stays informational.
func passportFee(app *store.PassportApplication) string {
	if app.B40Recipient {
		return "RM150"
	}
	return "RM200"
}
