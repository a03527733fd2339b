package dto

type AssistanceRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Topic   string `json:"topic" validate:"required"`
	Message string `json:"message"`
}

type AssistanceResponse struct {
	RequestId string `json:"request_id"`
	Status    string `json:"status"`
}
