package service

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type IEventService interface {
	List(lang string, query dto.CatalogQuery) *dto.CatalogResponse
	Detail(lang, id string) (*dto.EventDetailResponse, error)
}

type eventService struct {
	content IContentService
	catalog ICatalogService
	mapper  *mapper.ContentMapper
}

func NewEventService(content IContentService, catalog ICatalogService) IEventService {
	return &eventService{
		content: content,
		catalog: catalog,
		mapper:  mapper.NewContentMapper(),
	}
}

func (s *eventService) List(lang string, query dto.CatalogQuery) *dto.CatalogResponse {
	return s.catalog.Programs(lang, query)
}

func (s *eventService) Detail(lang, id string) (*dto.EventDetailResponse, error) {
	resolved := s.content.ResolveLanguage(lang)
	programs := s.content.Pack(resolved).Programs

	found := -1
	for i, p := range programs {
		if p.ID == id {
			found = i
			break
		}
	}
	if found == -1 {
		return nil, fiber.NewError(fiber.StatusNotFound, "event not found")
	}

	others := make([]dto.CatalogItem, 0, len(programs)-1)
	for i, p := range programs {
		if i == found {
			continue
		}
		others = append(others, s.mapper.ToCatalogItem(p))
	}

	return &dto.EventDetailResponse{
		Language: resolved,
		Event:    s.mapper.ToCatalogItem(programs[found]),
		Others:   others,
	}, nil
}
