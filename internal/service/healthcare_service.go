package service

import (
	"strings"

	"community-connect-be/internal/dto"
	"community-connect-be/internal/mapper"
	"community-connect-be/internal/model"
)

type IHealthcareService interface {
	Clinics(lang, area string) *dto.FacilitiesResponse
	Hospitals(lang, area string) *dto.FacilitiesResponse
	AppointmentOptions(lang string) *dto.AppointmentOptionsResponse
}

type healthcareService struct {
	content IContentService
	mapper  *mapper.ContentMapper
}

func NewHealthcareService(content IContentService) IHealthcareService {
	return &healthcareService{
		content: content,
		mapper:  mapper.NewContentMapper(),
	}
}

func (s *healthcareService) Clinics(lang, area string) *dto.FacilitiesResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, area, s.content.Pack(resolved).Clinics)
}

func (s *healthcareService) Hospitals(lang, area string) *dto.FacilitiesResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, area, s.content.Pack(resolved).Hospitals)
}

func (s *healthcareService) AppointmentOptions(lang string) *dto.AppointmentOptionsResponse {
	resolved := s.content.ResolveLanguage(lang)
	opts := s.content.Pack(resolved).Appointments
	return &dto.AppointmentOptionsResponse{
		FacilityTypes: opts.FacilityTypes,
		Areas:         opts.Areas,
		Slots:         opts.Slots,
	}
}

func (s *healthcareService) respond(lang, area string, facilities []model.Facility) *dto.FacilitiesResponse {
	matched := facilities
	if area != "" {
		matched = make([]model.Facility, 0, len(facilities))
		needle := strings.ToLower(area)
		for _, f := range facilities {
			if strings.Contains(strings.ToLower(f.Address), needle) {
				matched = append(matched, f)
			}
		}
	}
	return &dto.FacilitiesResponse{
		Language:   lang,
		Area:       area,
		Facilities: s.mapper.ToFacilities(matched),
	}
}
