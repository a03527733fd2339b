package dto

// CatalogQuery carries the shared filter controls of the list pages. Both
// fields are optional; an empty query and the "All" category are identity
// filters.
type CatalogQuery struct {
	Query    string `query:"q"`
	Category string `query:"category"`
}

type CatalogItem struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Category  string   `json:"category,omitempty"`
	Date      string   `json:"date,omitempty"`
	Link      string   `json:"link,omitempty"`
	Contact   string   `json:"contact,omitempty"`
	Location  string   `json:"location,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	Important bool     `json:"important,omitempty"`
	Details   []string `json:"details,omitempty"`
}

type CatalogResponse struct {
	Language   string        `json:"language"`
	Query      string        `json:"query"`
	Category   string        `json:"category"`
	Categories []string      `json:"categories"`
	Items      []CatalogItem `json:"items"`
	Total      int           `json:"total"`
	// Empty distinguishes "filters matched nothing" from "no content"; the
	// frontend shows a reset affordance only for the former.
	Empty bool `json:"empty"`
}
