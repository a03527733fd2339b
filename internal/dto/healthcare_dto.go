package dto

type FacilityResponse struct {
	Name     string   `json:"name"`
	Distance string   `json:"distance"`
	Address  string   `json:"address"`
	Hours    string   `json:"hours"`
	Services []string `json:"services"`
	Gov      bool     `json:"gov"`
}

type FacilitiesResponse struct {
	Language   string             `json:"language"`
	Area       string             `json:"area"`
	Facilities []FacilityResponse `json:"facilities"`
}

type AppointmentOptionsResponse struct {
	FacilityTypes []string `json:"facility_types"`
	Areas         []string `json:"areas"`
	Slots         []string `json:"slots"`
}
