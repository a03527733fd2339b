package contract

import (
	"community-connect-be/internal/model"
)

// ContentRepository serves the static, language-keyed content packs. Packs are
// loaded once at startup and never change; every method is read-only.
type ContentRepository interface {
	// Pack returns the content pack for a language code, or false when no
	// pack exists for it (the caller decides the fallback).
	Pack(lang string) (*model.ContentPack, bool)

	// Languages lists the selectable portal languages with their greetings.
	Languages() []model.Language

	// PackLanguages lists the codes that have a full content pack.
	PackLanguages() []string
}
