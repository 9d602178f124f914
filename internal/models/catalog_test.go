package models_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"internconnect/internal/models"
)

// ── SeedCatalog ────────────────────────────────────────────────────────────

func TestSeedCatalog_Validates(t *testing.T) {
	if err := models.SeedCatalog().Validate(); err != nil {
		t.Fatalf("seed catalog should validate, got %v", err)
	}
}

func TestSeedCatalog_LinksStudentProjects(t *testing.T) {
	c := models.SeedCatalog()
	for _, s := range c.Students {
		if len(s.Projects) != 1 {
			t.Fatalf("student %q has %d projects, want 1", s.Name, len(s.Projects))
		}
		if s.Projects[0].Student != s.Name {
			t.Errorf("student %q linked to project owned by %q", s.Name, s.Projects[0].Student)
		}
	}
}

func TestSeedCatalog_ReturnsFreshCopy(t *testing.T) {
	a := models.SeedCatalog()
	a.Projects[0].Tags[0] = "changed"
	a.Students[0].Projects[0].Title = "changed"

	b := models.SeedCatalog()
	if b.Projects[0].Tags[0] != "AI" {
		t.Errorf("mutating one seed leaked into another: tag = %q", b.Projects[0].Tags[0])
	}
	if a.Projects[0].Title == "changed" {
		t.Error("student project copy shares storage with catalog project")
	}
}

// ── Validate ───────────────────────────────────────────────────────────────

func TestValidate_DuplicateProjectID(t *testing.T) {
	c := models.SeedCatalog()
	c.Projects[1].ID = c.Projects[0].ID

	err := c.Validate()
	if !errors.Is(err, models.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if !errors.Is(err, models.ErrInvalidCatalog) {
		t.Errorf("expected error to wrap ErrInvalidCatalog, got %v", err)
	}
}

func TestValidate_DuplicateOpportunityID(t *testing.T) {
	c := models.SeedCatalog()
	c.Opportunities[1].ID = c.Opportunities[0].ID

	if err := c.Validate(); !errors.Is(err, models.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestValidate_SameIDAcrossCollections(t *testing.T) {
	c := models.SeedCatalog()
	c.Opportunities[0].ID = c.Projects[0].ID

	if err := c.Validate(); err != nil {
		t.Errorf("IDs only need to be unique per collection, got %v", err)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *models.Catalog)
	}{
		{"empty project title", func(c *models.Catalog) { c.Projects[0].Title = "" }},
		{"zero project id", func(c *models.Catalog) { c.Projects[0].ID = 0 }},
		{"empty tag", func(c *models.Catalog) { c.Projects[0].Tags = append(c.Projects[0].Tags, "") }},
		{"empty student name", func(c *models.Catalog) { c.Students[0].Name = "" }},
		{"empty skill", func(c *models.Catalog) { c.Students[1].Skills[0] = "" }},
		{"empty recruiter company", func(c *models.Catalog) { c.Recruiters[0].Company = "" }},
		{"empty opportunity type", func(c *models.Catalog) { c.Opportunities[0].Type = "" }},
		{"empty required skill", func(c *models.Catalog) { c.Opportunities[1].RequiredSkills[0] = "" }},
	}
	for _, tc := range cases {
		c := models.SeedCatalog()
		tc.mutate(c)
		if err := c.Validate(); !errors.Is(err, models.ErrInvalidCatalog) {
			t.Errorf("%s: expected ErrInvalidCatalog, got %v", tc.name, err)
		}
	}
}

func TestValidate_UnknownOpportunityTypeAllowed(t *testing.T) {
	c := models.SeedCatalog()
	c.Opportunities[0].Type = "fellowship"

	if err := c.Validate(); err != nil {
		t.Errorf("open opportunity type should validate, got %v", err)
	}
	if c.Opportunities[0].Type.Known() {
		t.Error("fellowship should not be a known type")
	}
}

// ── LoadCatalog ────────────────────────────────────────────────────────────

const seedYAML = `
projects:
  - id: 10
    title: Campus Energy Dashboard
    student: Mia Chen
    description: Live view of building energy use.
    tags: [Data, Sustainability]
students:
  - name: Mia Chen
    major: Environmental Science
    skills: [Data, Python]
    bio: Numbers person.
recruiters:
  - name: Jo
    company: GreenGrid
    interest_areas: [Sustainability]
opportunities:
  - id: 7
    title: Data Fellowship
    company: GreenGrid
    required_skills: [Python]
    type: fellowship
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadCatalog_ReadsYAML(t *testing.T) {
	c, err := models.LoadCatalog(writeSeed(t, seedYAML))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Projects) != 1 || c.Projects[0].Title != "Campus Energy Dashboard" {
		t.Errorf("unexpected projects: %+v", c.Projects)
	}
	if got := c.Opportunities[0].Type; got != "fellowship" {
		t.Errorf("opportunity type = %q, want fellowship", got)
	}
	if got := c.Recruiters[0].InterestAreas; len(got) != 1 || got[0] != "Sustainability" {
		t.Errorf("interest areas = %v", got)
	}
	if len(c.Students[0].Projects) != 1 {
		t.Errorf("expected student projects to be linked, got %d", len(c.Students[0].Projects))
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := models.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, models.ErrSeedNotFound) {
		t.Fatalf("expected ErrSeedNotFound, got %v", err)
	}
}

func TestLoadCatalog_InvalidContent(t *testing.T) {
	_, err := models.LoadCatalog(writeSeed(t, "projects:\n  - id: 1\n    student: x\n"))
	if !errors.Is(err, models.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestLoadCatalog_MalformedYAML(t *testing.T) {
	_, err := models.LoadCatalog(writeSeed(t, "projects: [\n"))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
