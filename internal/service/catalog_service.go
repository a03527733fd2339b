package service

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/mapper"
	"community-connect-be/pkg/catalog"
)

// ICatalogService serves the filterable list pages. Every list goes through
// the same pure filter, so query semantics are identical across pages.
type ICatalogService interface {
	Services(lang string, query dto.CatalogQuery) *dto.CatalogResponse
	VitalInfo(lang string, query dto.CatalogQuery) *dto.CatalogResponse
	Programs(lang string, query dto.CatalogQuery) *dto.CatalogResponse
	HealthNews(lang string, query dto.CatalogQuery) *dto.CatalogResponse
}

type catalogService struct {
	content IContentService
	mapper  *mapper.ContentMapper
}

func NewCatalogService(content IContentService) ICatalogService {
	return &catalogService{
		content: content,
		mapper:  mapper.NewContentMapper(),
	}
}

func (s *catalogService) Services(lang string, query dto.CatalogQuery) *dto.CatalogResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, s.content.Pack(resolved).Services, query)
}

func (s *catalogService) VitalInfo(lang string, query dto.CatalogQuery) *dto.CatalogResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, s.content.Pack(resolved).VitalInfo, query)
}

func (s *catalogService) Programs(lang string, query dto.CatalogQuery) *dto.CatalogResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, s.content.Pack(resolved).Programs, query)
}

func (s *catalogService) HealthNews(lang string, query dto.CatalogQuery) *dto.CatalogResponse {
	resolved := s.content.ResolveLanguage(lang)
	return s.respond(resolved, s.content.Pack(resolved).HealthNews, query)
}

func (s *catalogService) respond(lang string, items []catalog.Item, query dto.CatalogQuery) *dto.CatalogResponse {
	state := catalog.FilterState{Query: query.Query, Category: query.Category}
	if state.Category == "" {
		state.Category = catalog.CategoryAll
	}
	filtered := catalog.Filter(items, state)
	return &dto.CatalogResponse{
		Language:   lang,
		Query:      state.Query,
		Category:   state.Category,
		Categories: catalog.Categories(items),
		Items:      s.mapper.ToCatalogItems(filtered),
		Total:      len(filtered),
		Empty:      len(filtered) == 0 && state.Applied(),
	}
}
