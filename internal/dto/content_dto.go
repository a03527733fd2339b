package dto

type LanguageOption struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
}

type LanguagesResponse struct {
	Default   string           `json:"default"`
	Languages []LanguageOption `json:"languages"`
}

type NavItemResponse struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

type NavigationResponse struct {
	Language string            `json:"language"`
	Items    []NavItemResponse `json:"items"`
}
