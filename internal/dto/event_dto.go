package dto

type EventDetailResponse struct {
	Language string        `json:"language"`
	Event    CatalogItem   `json:"event"`
	Others   []CatalogItem `json:"others"`
}
