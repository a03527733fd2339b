package dto

type PassportLocationResponse struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Features []string `json:"features"`
	Distance string   `json:"distance"`
}

type PassportLocationsResponse struct {
	Language  string                     `json:"language"`
	Locations []PassportLocationResponse `json:"locations"`
}

type PassportStartResponse struct {
	ApplicationId string   `json:"application_id"`
	Step          int      `json:"step"`
	TotalSteps    int      `json:"total_steps"`
	Steps         []string `json:"steps"`
	Documents     []string `json:"documents"`
}

// PassportAdvanceRequest carries the data of whichever step the wizard is on.
// The service validates the fields the current step requires.
type PassportAdvanceRequest struct {
	FullName      string `json:"full_name"`
	MyKadNumber   string `json:"mykad_number"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	B40Recipient  bool   `json:"b40_recipient"`
	LocationIndex *int   `json:"location_index"`
	SlotIndex     *int   `json:"slot_index"`
	PaymentOption string `json:"payment_option"`
}

type PassportStateResponse struct {
	ApplicationId string                    `json:"application_id"`
	Step          int                       `json:"step"`
	TotalSteps    int                       `json:"total_steps"`
	StepLabel     string                    `json:"step_label"`
	FullName      string                    `json:"full_name,omitempty"`
	MyKadNumber   string                    `json:"mykad_number,omitempty"`
	Phone         string                    `json:"phone,omitempty"`
	Email         string                    `json:"email,omitempty"`
	B40Recipient  bool                      `json:"b40_recipient"`
	Location      *PassportLocationResponse `json:"location,omitempty"`
	Slot          string                    `json:"slot,omitempty"`
	PaymentOption string                    `json:"payment_option,omitempty"`
	Fee           string                    `json:"fee"`
	Completed     bool                      `json:"completed"`
}
