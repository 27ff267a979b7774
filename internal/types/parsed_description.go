package types

// EmploymentType is the normalized employment category of a position.
type EmploymentType string

// Employment type values accepted from the extraction provider
const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

// ExperienceLevel is the normalized seniority of a position.
type ExperienceLevel string

// Experience level values accepted from the extraction provider
const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"
)

// SalaryRange is an optional compensation range extracted from a description.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
	Period   string  `json:"period,omitempty"`
}

// ParsedDescription is the structured form of a raw job-description text as
// returned by the extraction provider. Every field except Title is optional;
// absent fields stay zero-valued rather than being defaulted.
type ParsedDescription struct {
	Title            string          `json:"title"`
	Company          string          `json:"company,omitempty"`
	Location         string          `json:"location,omitempty"`
	EmploymentType   EmploymentType  `json:"employmentType,omitempty"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel,omitempty"`
	Responsibilities []string        `json:"responsibilities,omitempty"`
	Requirements     []string        `json:"requirements,omitempty"`
	Skills           []string        `json:"skills,omitempty"`
	Benefits         []string        `json:"benefits,omitempty"`
	Salary           *SalaryRange    `json:"salary,omitempty"`
}
