// Package catalog holds the pure search and matching logic over the
// application's sample data. Nothing in here performs I/O or keeps state.
package catalog

import (
	"strings"

	"internconnect/internal/models"
)

// FilterProjects returns the projects whose title, description or any tag
// contains query, ignoring case. An empty query matches every project.
// Input order is preserved and the result is never nil.
func FilterProjects(projects []models.Project, query string) []models.Project {
	q := strings.ToLower(query)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsByStudent returns the projects owned by the named student, in order
func ProjectsByStudent(projects []models.Project, name string) []models.Project {
	out := make([]models.Project, 0)
	for _, p := range projects {
		if p.Student == name {
			out = append(out, p)
		}
	}
	return out
}

// matchesQuery expects q to be lower-cased already
func matchesQuery(p models.Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
