package model

import (
	"community-connect-be/pkg/catalog"
)

// Language describes one selectable portal language. Full content packs exist
// for en and zh; the remaining languages greet on the landing page and fall
// back to English content.
type Language struct {
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Greeting string `json:"greeting" yaml:"greeting"`
}

// NavItem is one entry of the main navigation bar.
type NavItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Facility is a clinic or hospital record.
type Facility struct {
	Name     string   `json:"name" yaml:"name"`
	Distance string   `json:"distance" yaml:"distance"`
	Address  string   `json:"address" yaml:"address"`
	Hours    string   `json:"hours" yaml:"hours"`
	Services []string `json:"services" yaml:"services"`
	Gov      bool     `json:"gov" yaml:"gov"`
}

// PassportLocation is an immigration office offered in the passport wizard.
type PassportLocation struct {
	Name     string   `json:"name" yaml:"name"`
	Address  string   `json:"address" yaml:"address"`
	Features []string `json:"features" yaml:"features"`
	Distance string   `json:"distance" yaml:"distance"`
}

// AppointmentOptions is the static choice set of the healthcare booking tab.
type AppointmentOptions struct {
	FacilityTypes []string `json:"facility_types" yaml:"facility_types"`
	Areas         []string `json:"areas" yaml:"areas"`
	Slots         []string `json:"slots" yaml:"slots"`
}

// ContentPack is the full language-keyed content table for one language. It
// replaces the original per-language component forks with data: one view, many
// packs.
type ContentPack struct {
	Language   string             `yaml:"language"`
	Navigation []NavItem          `yaml:"navigation"`
	Services   []catalog.Item     `yaml:"services"`
	VitalInfo  []catalog.Item     `yaml:"vital_info"`
	Programs   []catalog.Item     `yaml:"programs"`
	HealthNews []catalog.Item     `yaml:"health_news"`
	Clinics    []Facility         `yaml:"clinics"`
	Hospitals  []Facility         `yaml:"hospitals"`

	Appointments      AppointmentOptions `yaml:"appointments"`
	PassportLocations []PassportLocation `yaml:"passport_locations"`
	PassportSteps     []string           `yaml:"passport_steps"`
	PassportDocuments []string           `yaml:"passport_documents"`
}
