package catalog

import "strings"

// CategoryAll is the facet value that disables category narrowing.
const CategoryAll = "All"

// Item is one informational record (service, news item, assistance program).
// Items are immutable: they are loaded once from the content files and never
// created or mutated at runtime.
type Item struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Summary   string   `json:"summary" yaml:"summary"`
	Category  string   `json:"category" yaml:"category"`
	Date      string   `json:"date,omitempty" yaml:"date,omitempty"`
	Link      string   `json:"link,omitempty" yaml:"link,omitempty"`
	Contact   string   `json:"contact,omitempty" yaml:"contact,omitempty"`
	Location  string   `json:"location,omitempty" yaml:"location,omitempty"`
	Icon      string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Important bool     `json:"important,omitempty" yaml:"important,omitempty"`
	Details   []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// FilterState is the pair of constraints a visitor has applied.
type FilterState struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// Applied reports whether any constraint narrows the catalog. The UI uses
// this to tell "empty because filtered" apart from "not yet searched".
func (s FilterState) Applied() bool {
	return strings.TrimSpace(s.Query) != "" || (s.Category != "" && s.Category != CategoryAll)
}

// Reset returns the default, unconstrained state.
func (s FilterState) Reset() FilterState {
	return FilterState{Category: CategoryAll}
}

// Filter recomputes the visible subset of items for the given state. An item
// is visible when its category matches (or the facet is "All"/empty) and the
// query, folded case-insensitively, occurs in its title or summary. The input
// slice is never mutated and the original order is preserved. The result is a
// fresh slice, recomputed in full on every call; the catalogs are small enough
// that incremental indexing buys nothing.
func Filter(items []Item, state FilterState) []Item {
	query := strings.ToLower(strings.TrimSpace(state.Query))
	category := state.Category

	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Summary), query) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// Categories returns "All" followed by the distinct categories of items in
// first-appearance order, mirroring how the pages build their facet buttons.
func Categories(items []Item) []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}
