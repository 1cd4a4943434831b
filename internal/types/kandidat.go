// Package types defines the candidate document model shared across the platform.
package types

// Contact holds the contact channels of a candidate. Every field is
// optional; a redacted profile carries an empty Contact.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// EmploymentEntry is one station of the employment history.
type EmploymentEntry struct {
	Position  string `json:"position,omitempty"`
	Company   string `json:"company,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// PersoenlicheDaten are the personal facts shown on the profile page.
type PersoenlicheDaten struct {
	Wohnort       string `json:"wohnort,omitempty"`
	Geburtsdatum  string `json:"geburtsdatum,omitempty"`
	Geburtsort    string `json:"geburtsort,omitempty"`
	Familienstand string `json:"familienstand,omitempty"`
}

// Sprachkenntnis is a language with its proficiency level.
type Sprachkenntnis struct {
	Sprache string `json:"sprache,omitempty"`
	Niveau  string `json:"niveau,omitempty"`
}

// SoftwareKenntnis is a tool or technology with a 0-100 proficiency level.
type SoftwareKenntnis struct {
	Name  string `json:"name,omitempty"`
	Level int    `json:"level,omitempty"`
}

// Certificate is a certification entry.
type Certificate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
}

// Highlight is a headline achievement shown near the top of the profile.
type Highlight struct {
	Icon        string `json:"icon,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education station.
type Education struct {
	Org       string `json:"org,omitempty"`
	StudyType string `json:"studyType,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Note      string `json:"note,omitempty"`
}

// WorkEntry is a detailed work station with summary and achievements.
type WorkEntry struct {
	Name         string   `json:"name,omitempty"` // employer name
	Position     string   `json:"position,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// ParsedProfile is the structured document produced by the external resume
// parser, extended with the presentation sections the profile page renders.
// Every field except the core identity fields is optional; renderers must
// tolerate any of them being absent.
type ParsedProfile struct {
	Name              string            `json:"name,omitempty"`
	Title             string            `json:"title,omitempty"`
	Brief             string            `json:"brief,omitempty"`
	Skills            []string          `json:"skills,omitempty"`
	EmploymentHistory []EmploymentEntry `json:"employmentHistory,omitempty"`
	Contact           Contact           `json:"contact"`

	// Profile page sections.
	Kurzprofil         string             `json:"kurzprofil,omitempty"`
	Kernthemen         []string           `json:"kernthemen,omitempty"`
	Jobrollen          []string           `json:"jobrollen,omitempty"`
	Standort           string             `json:"standort,omitempty"`
	Erfahrung          string             `json:"erfahrung,omitempty"`
	Gehalt             string             `json:"gehalt,omitempty"`
	Verfuegbarkeit     string             `json:"verfuegbarkeit,omitempty"`
	Senioritaet        string             `json:"senioritaet,omitempty"`
	PersoenlicheDaten  *PersoenlicheDaten `json:"persoenlicheDaten,omitempty"`
	Sprachkenntnisse   []Sprachkenntnis   `json:"sprachkenntnisse,omitempty"`
	SoftwareKenntnisse []SoftwareKenntnis `json:"softwareKenntnisse,omitempty"`
	Certificates       []Certificate      `json:"certificates,omitempty"`
	Highlights         []Highlight        `json:"highlights,omitempty"`
	Education          []Education        `json:"education,omitempty"`
	Work               []WorkEntry        `json:"work,omitempty"`
}

// Redacted returns a copy of the profile with every contact field cleared.
// All other fields pass through untouched.
func (p ParsedProfile) Redacted() ParsedProfile {
	p.Contact = Contact{}
	return p
}
