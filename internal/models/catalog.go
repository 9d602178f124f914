package models

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Catalog holds every collection the application renders. It is built once
// at start-up and treated as read-only afterwards.
type Catalog struct {
	Projects      []Project     `json:"projects" yaml:"projects" validate:"dive"`
	Students      []Student     `json:"students" yaml:"students" validate:"dive"`
	Recruiters    []Recruiter   `json:"recruiters" yaml:"recruiters" validate:"dive"`
	Opportunities []Opportunity `json:"opportunities" yaml:"opportunities" validate:"dive"`
}

var validate = validator.New()

// Validate checks field-level rules and ID uniqueness within each collection
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %s", ErrInvalidCatalog, describeFieldErrors(fieldErrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[int]bool, len(c.Projects))
	for _, p := range c.Projects {
		if seen[p.ID] {
			return fmt.Errorf("%w: %w: project %d", ErrInvalidCatalog, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
	}

	seen = make(map[int]bool, len(c.Opportunities))
	for _, o := range c.Opportunities {
		if seen[o.ID] {
			return fmt.Errorf("%w: %w: opportunity %d", ErrInvalidCatalog, ErrDuplicateID, o.ID)
		}
		seen[o.ID] = true
	}

	return nil
}

// LinkProjects fills each student's Projects with copies of the projects
// naming that student, in catalog order
func (c *Catalog) LinkProjects() {
	for i := range c.Students {
		var owned []Project
		for _, p := range c.Projects {
			if p.Student == c.Students[i].Name {
				owned = append(owned, cloneProject(p))
			}
		}
		c.Students[i].Projects = owned
	}
}

// LoadCatalog reads a catalog from a YAML seed file and validates it
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, path)
		}
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.LinkProjects()
	return &c, nil
}

// describeFieldErrors turns validator errors into one readable line
func describeFieldErrors(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Namespace()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Namespace()))
		}
	}
	return strings.Join(msgs, ", ")
}

func cloneProject(p Project) Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
