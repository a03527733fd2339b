package service

import (
	"community-connect-be/internal/dto"
	"community-connect-be/internal/mapper"
	"community-connect-be/internal/model"
	"community-connect-be/internal/repository/contract"

	"golang.org/x/text/language"
)

type IContentService interface {
	Languages() *dto.LanguagesResponse
	Navigation(lang string) *dto.NavigationResponse
	// ResolveLanguage maps a requested language code (or Accept-Language
	// value) onto a portal code, falling back to the configured default.
	ResolveLanguage(requested string) string
	// Pack returns the content pack backing a portal language. Languages
	// without a full pack serve the default pack.
	Pack(lang string) *model.ContentPack
}

type contentService struct {
	repo            contract.ContentRepository
	mapper          *mapper.ContentMapper
	defaultLanguage string
	matcher         language.Matcher
	tagToCode       map[language.Tag]string
}

// The portal uses "bm" for Bahasa Malaysia; BCP 47 calls it "ms". The matcher
// works in tags, so both spellings resolve to the same portal code.
var portalTags = []struct {
	tag  language.Tag
	code string
}{
	{language.English, "en"},
	{language.Chinese, "zh"},
	{language.Malay, "bm"},
	{language.Tamil, "ta"},
}

func NewContentService(repo contract.ContentRepository, defaultLanguage string) IContentService {
	tags := make([]language.Tag, 0, len(portalTags))
	tagToCode := make(map[language.Tag]string, len(portalTags))
	for _, p := range portalTags {
		tags = append(tags, p.tag)
		tagToCode[p.tag] = p.code
	}
	return &contentService{
		repo:            repo,
		mapper:          mapper.NewContentMapper(),
		defaultLanguage: defaultLanguage,
		matcher:         language.NewMatcher(tags),
		tagToCode:       tagToCode,
	}
}

func (s *contentService) Languages() *dto.LanguagesResponse {
	languages := s.repo.Languages()
	options := make([]dto.LanguageOption, 0, len(languages))
	for _, l := range languages {
		options = append(options, s.mapper.ToLanguageOption(l))
	}
	return &dto.LanguagesResponse{
		Default:   s.defaultLanguage,
		Languages: options,
	}
}

func (s *contentService) Navigation(lang string) *dto.NavigationResponse {
	resolved := s.ResolveLanguage(lang)
	pack := s.Pack(resolved)
	items := make([]dto.NavItemResponse, 0, len(pack.Navigation))
	for _, n := range pack.Navigation {
		items = append(items, s.mapper.ToNavItem(n))
	}
	return &dto.NavigationResponse{
		Language: resolved,
		Items:    items,
	}
}

func (s *contentService) ResolveLanguage(requested string) string {
	if requested == "" {
		return s.defaultLanguage
	}
	if requested == "bm" {
		// language.Parse rejects the portal spelling.
		return "bm"
	}
	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return s.defaultLanguage
	}
	_, index, conf := s.matcher.Match(desired...)
	if conf == language.No {
		return s.defaultLanguage
	}
	return s.tagToCode[portalTags[index].tag]
}

func (s *contentService) Pack(lang string) *model.ContentPack {
	if pack, ok := s.repo.Pack(lang); ok {
		return pack
	}
	pack, ok := s.repo.Pack(s.defaultLanguage)
	if !ok {
		// The embedded packs are parsed fail-fast at startup, so the
		// default pack is always present.
		panic("content: default language pack missing")
	}
	return pack
}
