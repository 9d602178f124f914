package commands

import (
	"fmt"
	"io"
	"log/slog"

	"internconnect/internal/catalog"
	"internconnect/internal/config"
	"internconnect/internal/models"
	"internconnect/internal/session"

	"github.com/spf13/cobra"
)

var (
	globalConfig     *config.Config
	globalConfigPath string
	logger           = slog.New(slog.NewTextHandler(io.Discard, nil))

	// Flag values shared by every command
	seedPath   string
	policyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "internconnect",
	Short: "InternConnect - match students with projects and opportunities",
	Long: `InternConnect is a terminal prototype for browsing student projects,
student and recruiter profiles, and the internships and competitions a
student's skills qualify them for.

Run without a subcommand to open the interactive UI.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return uiCmd.RunE(cmd, args)
	},
}

// Execute runs the root command
func Execute(cfg *config.Config, cfgPath string, log *slog.Logger) error {
	globalConfig = cfg
	globalConfigPath = cfgPath
	if log != nil {
		logger = log
	}
	return rootCmd.Execute()
}

// loadCatalog returns the catalog named by --seed or the config, falling
// back to the built-in sample data
func loadCatalog() (*models.Catalog, error) {
	path := seedPath
	if path == "" && globalConfig != nil {
		path = globalConfig.SeedPath
	}

	if path == "" {
		return models.SeedCatalog(), nil
	}

	cat, err := models.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("loading seed data: %w", err)
	}
	logger.Info("seed data loaded",
		slog.String("path", path),
		slog.Int("projects", len(cat.Projects)),
		slog.Int("students", len(cat.Students)),
		slog.Int("opportunities", len(cat.Opportunities)))
	return cat, nil
}

// resolvePolicy returns the tab gating policy from --policy or the config
func resolvePolicy() (session.Policy, error) {
	raw := policyFlag
	if raw == "" && globalConfig != nil {
		raw = globalConfig.Policy
	}
	if raw == "" {
		return session.PolicyGuarded, nil
	}
	return session.ParsePolicy(raw)
}

// resolveStudent picks the logged-in student: the given name, the
// configured one, or the first student in the catalog
func resolveStudent(cat *models.Catalog, name string) (models.Student, error) {
	if name == "" && globalConfig != nil {
		name = globalConfig.Student
	}
	if name == "" {
		if len(cat.Students) == 0 {
			return models.Student{}, nil
		}
		return cat.Students[0], nil
	}

	student, err := catalog.FindStudent(cat.Students, name)
	if err != nil {
		return models.Student{}, fmt.Errorf("%w: %q", err, name)
	}
	return student, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML file replacing the built-in sample data")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "Tab gating policy: guarded or open")

	// Add all commands
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(recruitersCmd)
	rootCmd.AddCommand(opportunitiesCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(configCmd)
}
