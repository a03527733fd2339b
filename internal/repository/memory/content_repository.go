package memory

import (
	"embed"
	"fmt"
	"sort"

	"community-connect-be/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var contentFS embed.FS

// selectable languages on the landing screen. Only en and zh carry a full
// content pack; bm and ta greet and fall back to English content.
var landingLanguages = []model.Language{
	{Code: "en", Name: "English", Greeting: "Welcome"},
	{Code: "zh", Name: "中文", Greeting: "欢迎"},
	{Code: "bm", Name: "Bahasa Melayu", Greeting: "Selamat datang"},
	{Code: "ta", Name: "தமிழ்", Greeting: "வரவேற்கிறோம்"},
}

// ContentRepository holds the parsed content packs in memory.
type ContentRepository struct {
	packs map[string]*model.ContentPack
}

// NewContentRepository parses every embedded content file. It fails fast on a
// malformed file since the content ships with the binary.
func NewContentRepository() (*ContentRepository, error) {
	entries, err := contentFS.ReadDir("content")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded content: %w", err)
	}

	packs := make(map[string]*model.ContentPack, len(entries))
	for _, entry := range entries {
		data, err := contentFS.ReadFile("content/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var pack model.ContentPack
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		if pack.Language == "" {
			return nil, fmt.Errorf("content file %s has no language code", entry.Name())
		}
		packs[pack.Language] = &pack
	}

	return &ContentRepository{packs: packs}, nil
}

func (r *ContentRepository) Pack(lang string) (*model.ContentPack, bool) {
	pack, ok := r.packs[lang]
	return pack, ok
}

func (r *ContentRepository) Languages() []model.Language {
	out := make([]model.Language, len(landingLanguages))
	copy(out, landingLanguages)
	return out
}

func (r *ContentRepository) PackLanguages() []string {
	codes := make([]string, 0, len(r.packs))
	for code := range r.packs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
