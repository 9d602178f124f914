package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"internconnect/internal/models"
	"internconnect/internal/util"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tagChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("25")).
			Background(lipgloss.Color("153")).
			Padding(0, 1)

	skillChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("157")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// ChipStyle selects the colour scheme of a chip row
type ChipStyle int

const (
	// TagChips are used for project tags
	TagChips ChipStyle = iota

	// SkillChips are used for student and required skills
	SkillChips
)

// Chips renders items as a row of coloured labels
func Chips(items []string, style ChipStyle) string {
	if len(items) == 0 {
		return dimStyle.Render("none")
	}
	s := tagChipStyle
	if style == SkillChips {
		s = skillChipStyle
	}
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, s.Render(item))
	}
	return strings.Join(rendered, " ")
}

// ProjectCard renders a project with its owner and tags
func ProjectCard(p models.Project, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(p.Title),
		dimStyle.Render("By "+p.Student),
		wrap(p.Description, width),
		Chips(p.Tags, TagChips),
	)
	return card(body, width)
}

// StudentRow renders a one-card summary used on the dashboard
func StudentRow(s models.Student, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(fmt.Sprintf("%s — %s", s.Name, s.Major)),
		dimStyle.Render("Skills: "+util.JoinList(s.Skills, "none")),
	)
	return card(body, width)
}

// ProfileCard renders the full profile of a student
func ProfileCard(s models.Student, width int) string {
	lines := []string{
		cardTitleStyle.Render(s.Name),
		dimStyle.Render(s.Major),
		wrap(s.Bio, width),
		Chips(s.Skills, SkillChips),
	}
	if len(s.Projects) > 0 {
		lines = append(lines, "", dimStyle.Render("Projects"))
		for _, p := range s.Projects {
			lines = append(lines, "• "+p.Title)
		}
	}
	return card(lipgloss.JoinVertical(lipgloss.Left, lines...), width)
}

// RecruiterCard renders a recruiter with their interest areas
func RecruiterCard(r models.Recruiter, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(fmt.Sprintf("%s @ %s", r.Name, r.Company)),
		dimStyle.Render("Interest Areas: "+util.JoinList(r.InterestAreas, "none")),
	)
	return card(body, width)
}

// OpportunityCard renders an opportunity, highlighting the skills the
// viewing student shares with it
func OpportunityCard(o models.Opportunity, shared []string, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(o.Title)+" "+typeStyle.Render("["+string(o.Type)+"]"),
		dimStyle.Render(o.Company),
		wrap(o.Description, width),
		"Requires: "+Chips(o.RequiredSkills, TagChips),
		"You have: "+Chips(shared, SkillChips),
	)
	return card(body, width)
}

func card(body string, width int) string {
	if width > 4 {
		return cardStyle.Width(width - 2).Render(body)
	}
	return cardStyle.Render(body)
}

func wrap(text string, width int) string {
	if width <= 6 {
		return text
	}
	return lipgloss.NewStyle().Width(width - 6).Render(text)
}
