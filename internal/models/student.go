package models

// Student represents a student profile. Name doubles as the identifier
// and is not required to be unique.
type Student struct {
	Name   string   `json:"name" yaml:"name" validate:"required"`
	Major  string   `json:"major" yaml:"major"`
	Skills []string `json:"skills,omitempty" yaml:"skills" validate:"dive,required"`
	Bio    string   `json:"bio,omitempty" yaml:"bio"`

	// Projects holds copies of the projects owned by this student.
	// It is derived from the catalog's project list and never read from a seed file.
	Projects []Project `json:"projects,omitempty" yaml:"-" validate:"-"`
}

// Recruiter represents a recruiter browsing the catalog
type Recruiter struct {
	Name          string   `json:"name" yaml:"name" validate:"required"`
	Company       string   `json:"company" yaml:"company" validate:"required"`
	InterestAreas []string `json:"interest_areas,omitempty" yaml:"interest_areas" validate:"dive,required"`
}
