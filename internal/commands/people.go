package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"internconnect/internal/util"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "List students",
	Long:  "List every student with their major, skills and projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(cat.Students) == 0 {
			fmt.Fprintln(out, "No students found.")
			return nil
		}

		name := color.New(color.FgCyan, color.Bold)
		for _, s := range cat.Students {
			name.Fprintf(out, "%s — %s\n", s.Name, s.Major)
			if s.Bio != "" {
				fmt.Fprintf(out, "   %s\n", s.Bio)
			}
			color.New(color.FgGreen).Fprintf(out, "   Skills: %s\n", util.JoinList(s.Skills, "none"))
			for _, p := range s.Projects {
				fmt.Fprintf(out, "   Project: %s\n", p.Title)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var recruitersCmd = &cobra.Command{
	Use:   "recruiters",
	Short: "List recruiters",
	Long:  "List every recruiter with their company and interest areas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(cat.Recruiters) == 0 {
			fmt.Fprintln(out, "No recruiters found.")
			return nil
		}

		name := color.New(color.FgCyan, color.Bold)
		for _, r := range cat.Recruiters {
			name.Fprintf(out, "%s @ %s\n", r.Name, r.Company)
			fmt.Fprintf(out, "   Interest Areas: %s\n", util.JoinList(r.InterestAreas, "none"))
		}
		return nil
	},
}
