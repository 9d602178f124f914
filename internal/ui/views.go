package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"internconnect/internal/catalog"
	"internconnect/internal/session"
	"internconnect/internal/ui/components"
	"internconnect/internal/util"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)
)

var tabLabels = map[session.Tab]string{
	session.TabDashboard:     "Student Dashboard",
	session.TabProfile:       "Profile",
	session.TabRecruiter:     "Recruiter View",
	session.TabProjects:      "Project Feed",
	session.TabOpportunities: "Opportunities",
}

// renderTabBar draws the tabs the current state may enter, numbered by
// their fixed position so the digit shortcuts stay stable across roles
func renderTabBar(s session.State) string {
	if s.Tab == session.TabLogin && s.Policy != session.PolicyOpen {
		return ""
	}

	numbers := make(map[session.Tab]int)
	for i, t := range session.AllTabs() {
		numbers[t] = i + 1
	}

	var parts []string
	for _, t := range session.Tabs(s) {
		label := fmt.Sprintf("%d %s", numbers[t], tabLabels[t])
		if t == s.Tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderTab returns the viewport content and status line for the active tab
func renderTab(m *Model) (string, string) {
	width := m.Width
	if width > 100 {
		width = 100
	}

	switch m.Session.Tab {
	case session.TabDashboard:
		return renderDashboard(m, width)
	case session.TabProfile:
		return renderProfile(m, width)
	case session.TabProjects:
		return renderProjects(m, width)
	case session.TabOpportunities:
		return renderOpportunities(m, width)
	case session.TabRecruiter:
		return renderRecruiters(m, width)
	}
	return renderLogin(), "Ready"
}

func renderLogin() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Login"),
		"Select your role to get started:",
		"",
		"  [s] Login as Student",
		"  [r] Login as Recruiter",
	)
}

func renderDashboard(m *Model, width int) (string, string) {
	students := m.Catalog.Students
	sections := []string{headingStyle.Render("Student Overview")}
	for _, s := range students {
		sections = append(sections, components.StudentRow(s, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), util.Plural(len(students), "student")
}

func renderProfile(m *Model, width int) (string, string) {
	heading := headingStyle.Render("My Profile")
	if m.Student.Name == "" {
		return lipgloss.JoinVertical(lipgloss.Left, heading, "No student profile available."), "No profile"
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, components.ProfileCard(m.Student, width)), m.Student.Name
}

func renderProjects(m *Model, width int) (string, string) {
	projects := catalog.FilterProjects(m.Catalog.Projects, m.Session.Query)

	sections := []string{
		headingStyle.Render("Student Project Feed"),
		"Explore student-led research, career, and academic initiatives.",
		"",
	}
	if len(projects) == 0 {
		sections = append(sections, fmt.Sprintf("No projects match %q.", m.Session.Query))
	}
	for _, p := range projects {
		sections = append(sections, components.ProjectCard(p, width))
	}

	status := fmt.Sprintf("%s of %d", util.Plural(len(projects), "project"), len(m.Catalog.Projects))
	if strings.TrimSpace(m.Session.Query) != "" {
		status += fmt.Sprintf(" matching %q", util.Truncate(m.Session.Query, 40))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), status
}

func renderOpportunities(m *Model, width int) (string, string) {
	heading := headingStyle.Render("Matched Opportunities")
	if m.Student.Name == "" {
		return lipgloss.JoinVertical(lipgloss.Left, heading, "No student profile to match."), "No profile"
	}

	matches := catalog.MatchOpportunities(m.Student, m.Catalog.Opportunities)
	sections := []string{
		heading,
		fmt.Sprintf("Opportunities for %s (skills: %s)", m.Student.Name, util.JoinList(m.Student.Skills, "none")),
		"",
	}
	if len(matches) == 0 {
		sections = append(sections, "No opportunities require any of your skills yet.")
	}
	for _, o := range matches {
		sections = append(sections, components.OpportunityCard(o, catalog.SharedSkills(m.Student, o), width))
	}

	m.log.Debug("matched opportunities",
		"student", m.Student.Name,
		"matches", len(matches))
	return lipgloss.JoinVertical(lipgloss.Left, sections...), util.Plural(len(matches), "match")
}

func renderRecruiters(m *Model, width int) (string, string) {
	recruiters := m.Catalog.Recruiters
	sections := []string{headingStyle.Render("Recruiter Dashboard")}
	for _, r := range recruiters {
		sections = append(sections, components.RecruiterCard(r, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), util.Plural(len(recruiters), "recruiter")
}

func helpText(m Model) string {
	switch {
	case m.Search.Focused():
		return "Type to filter • enter/esc to finish"
	case m.Session.Tab == session.TabLogin:
		return "s student • r recruiter • q quit"
	case m.Session.Tab == session.TabProjects:
		return "/ search • tab/shift+tab switch • 1-5 jump • o logout • q quit"
	}
	return "tab/shift+tab switch • 1-5 jump • ↑/↓ scroll • o logout • q quit"
}
