package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"internconnect/internal/catalog"
	"internconnect/internal/models"
	"internconnect/internal/util"
)

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities",
	Short: "List opportunities",
	Long:  "List every internship and competition with its required skills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(cat.Opportunities) == 0 {
			fmt.Fprintln(out, "No opportunities found.")
			return nil
		}

		for _, o := range cat.Opportunities {
			printOpportunity(out, o, nil)
		}
		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match [student name]",
	Short: "Show opportunities matching a student's skills",
	Long: `Show the opportunities requiring at least one of the student's skills.
Skills must match exactly, including case. Without a name the configured
student, or the first one, is used.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		student, err := resolveStudent(cat, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if student.Name == "" {
			return fmt.Errorf("%w: catalog has no students", catalog.ErrStudentNotFound)
		}

		matches := catalog.MatchOpportunities(student, cat.Opportunities)
		logger.Debug("opportunities matched",
			slog.String("student", student.Name),
			slog.Int("matches", len(matches)))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Opportunities for %s (skills: %s)\n\n", student.Name, util.JoinList(student.Skills, "none"))
		if len(matches) == 0 {
			fmt.Fprintln(out, "No opportunities require any of these skills.")
			return nil
		}

		for _, o := range matches {
			printOpportunity(out, o, catalog.SharedSkills(student, o))
		}
		fmt.Fprintln(out, util.Plural(len(matches), "match"))
		return nil
	},
}

// printOpportunity writes one opportunity; shared is nil when no student
// is being matched
func printOpportunity(out io.Writer, o models.Opportunity, shared []string) {
	color.New(color.FgCyan, color.Bold).Fprintf(out, "%d. %s", o.ID, o.Title)
	color.New(color.FgMagenta).Fprintf(out, " [%s]\n", o.Type)
	fmt.Fprintf(out, "   %s\n", o.Company)
	if o.Description != "" {
		fmt.Fprintf(out, "   %s\n", o.Description)
	}
	fmt.Fprintf(out, "   Requires: %s\n", util.JoinList(o.RequiredSkills, "none"))
	if shared != nil {
		color.New(color.FgGreen).Fprintf(out, "   Shared skills: %s\n", util.JoinList(shared, "none"))
	}
	fmt.Fprintln(out)
}
