package catalog

import (
	"errors"

	"internconnect/internal/models"
)

// ErrStudentNotFound is returned when no student has the requested name
var ErrStudentNotFound = errors.New("student not found")

// MatchOpportunities returns the opportunities requiring at least one skill
// the student has. Skills are compared exactly, case included; matching is
// a yes/no test with no scoring, so input order is preserved.
func MatchOpportunities(student models.Student, opportunities []models.Opportunity) []models.Opportunity {
	skills := skillSet(student)
	out := make([]models.Opportunity, 0, len(opportunities))
	if len(skills) == 0 {
		return out
	}

	for _, o := range opportunities {
		for _, req := range o.RequiredSkills {
			if skills[req] {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

// SharedSkills returns the opportunity's required skills that the student
// has, in the order the opportunity lists them
func SharedSkills(student models.Student, opportunity models.Opportunity) []string {
	skills := skillSet(student)
	shared := make([]string, 0)
	for _, req := range opportunity.RequiredSkills {
		if skills[req] {
			shared = append(shared, req)
		}
	}
	return shared
}

// FindStudent returns the first student with exactly the given name
func FindStudent(students []models.Student, name string) (models.Student, error) {
	for _, s := range students {
		if s.Name == name {
			return s, nil
		}
	}
	return models.Student{}, ErrStudentNotFound
}

func skillSet(student models.Student) map[string]bool {
	set := make(map[string]bool, len(student.Skills))
	for _, s := range student.Skills {
		set[s] = true
	}
	return set
}
