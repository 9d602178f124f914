package models

// OpportunityType defines the kind of opportunity
type OpportunityType string

const (
	// OpportunityInternship is a paid or unpaid internship
	OpportunityInternship OpportunityType = "internship"

	// OpportunityCompetition is a hackathon, challenge or similar contest
	OpportunityCompetition OpportunityType = "competition"
)

// Known reports whether t is one of the built-in opportunity types.
// Other values are allowed and rendered as-is.
func (t OpportunityType) Known() bool {
	return t == OpportunityInternship || t == OpportunityCompetition
}

// Opportunity represents an internship or competition offered by a company
type Opportunity struct {
	ID             int             `json:"id" yaml:"id" validate:"required"`
	Title          string          `json:"title" yaml:"title" validate:"required"`
	Company        string          `json:"company" yaml:"company" validate:"required"`
	Description    string          `json:"description" yaml:"description"`
	RequiredSkills []string        `json:"required_skills,omitempty" yaml:"required_skills" validate:"dive,required"`
	Type           OpportunityType `json:"type" yaml:"type" validate:"required"`
}
