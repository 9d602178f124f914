package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"internconnect/internal/catalog"
	"internconnect/internal/util"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [query]",
	Short: "List or search student projects",
	Long: `List student projects. With a query, only projects whose title,
description or tags contain it (ignoring case) are shown.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		projects := catalog.FilterProjects(cat.Projects, query)
		logger.Debug("projects filtered",
			slog.String("query", query),
			slog.Int("matches", len(projects)))

		out := cmd.OutOrStdout()
		if len(projects) == 0 {
			fmt.Fprintf(out, "No projects match %q.\n", query)
			return nil
		}

		title := color.New(color.FgCyan, color.Bold)
		tag := color.New(color.FgBlue)
		for _, p := range projects {
			title.Fprintf(out, "%d. %s\n", p.ID, p.Title)
			fmt.Fprintf(out, "   By %s\n", p.Student)
			fmt.Fprintf(out, "   %s\n", p.Description)
			tag.Fprintf(out, "   Tags: %s\n", util.JoinList(p.Tags, "none"))
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "%s of %d\n", util.Plural(len(projects), "project"), len(cat.Projects))
		return nil
	},
}
