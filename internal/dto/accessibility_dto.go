package dto

type FontState struct {
	FontSizePx int `json:"font_size_px"`
	Min        int `json:"min"`
	Max        int `json:"max"`
	Step       int `json:"step"`
}

type AccessibilityResponse struct {
	SessionId string    `json:"session_id"`
	Layout    FontState `json:"layout"`
	Page      FontState `json:"page"`
	Zoom      float64   `json:"zoom"`
}

type AccessibilityAdjustRequest struct {
	Surface string `json:"surface" validate:"required,oneof=layout page"`
	Control string `json:"control" validate:"required,oneof=font zoom"`
	Action  string `json:"action" validate:"required,oneof=increase decrease reset"`
}
