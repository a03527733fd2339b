package mapper

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/model"
	"community-connect-be/pkg/catalog"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToLanguageOption(l model.Language) dto.LanguageOption {
	return dto.LanguageOption{
		Code:     l.Code,
		Name:     l.Name,
		Greeting: l.Greeting,
	}
}

func (m *ContentMapper) ToNavItem(n model.NavItem) dto.NavItemResponse {
	return dto.NavItemResponse{
		Id:    n.ID,
		Label: n.Label,
	}
}

func (m *ContentMapper) ToCatalogItem(item catalog.Item) dto.CatalogItem {
	return dto.CatalogItem{
		Id:        item.ID,
		Title:     item.Title,
		Summary:   item.Summary,
		Category:  item.Category,
		Date:      item.Date,
		Link:      item.Link,
		Contact:   item.Contact,
		Location:  item.Location,
		Icon:      item.Icon,
		Important: item.Important,
		Details:   item.Details,
	}
}

func (m *ContentMapper) ToCatalogItems(items []catalog.Item) []dto.CatalogItem {
	out := make([]dto.CatalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, m.ToCatalogItem(item))
	}
	return out
}

func (m *ContentMapper) ToFacility(f model.Facility) dto.FacilityResponse {
	return dto.FacilityResponse{
		Name:     f.Name,
		Distance: f.Distance,
		Address:  f.Address,
		Hours:    f.Hours,
		Services: f.Services,
		Gov:      f.Gov,
	}
}

func (m *ContentMapper) ToFacilities(facilities []model.Facility) []dto.FacilityResponse {
	out := make([]dto.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, m.ToFacility(f))
	}
	return out
}

func (m *ContentMapper) ToPassportLocation(l model.PassportLocation) dto.PassportLocationResponse {
	return dto.PassportLocationResponse{
		Name:     l.Name,
		Address:  l.Address,
		Features: l.Features,
		Distance: l.Distance,
	}
}

func (m *ContentMapper) ToPassportLocations(locations []model.PassportLocation) []dto.PassportLocationResponse {
	out := make([]dto.PassportLocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, m.ToPassportLocation(l))
	}
	return out
}
