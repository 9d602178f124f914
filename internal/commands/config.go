package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"internconnect/internal/config"
	"internconnect/internal/models"
	"internconnect/internal/session"
)

var (
	// Variables to hold flag values
	setEnv         string
	setSeedPath    string
	setPolicy      string
	setDefaultRole string
	setStudent     string
	setLogPath     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage InternConnect configuration",
	Long:  "View and update InternConnect configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		out := cmd.OutOrStdout()

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "Env: %s\n", cfg.Env)
			fmt.Fprintf(out, "Policy: %s\n", cfg.Policy)
			if cfg.SeedPath != "" {
				fmt.Fprintf(out, "Seed Path: %s\n", cfg.SeedPath)
			}
			if cfg.DefaultRole != "" {
				fmt.Fprintf(out, "Default Role: %s\n", cfg.DefaultRole)
			}
			if cfg.Student != "" {
				fmt.Fprintf(out, "Student: %s\n", cfg.Student)
			}
			if cfg.LogPath != "" {
				fmt.Fprintf(out, "Log Path: %s\n", cfg.LogPath)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "env":
			fmt.Fprintln(out, cfg.Env)
		case "policy":
			fmt.Fprintln(out, cfg.Policy)
		case "seed-path":
			fmt.Fprintln(out, cfg.SeedPath)
		case "default-role":
			fmt.Fprintln(out, cfg.DefaultRole)
		case "student":
			fmt.Fprintln(out, cfg.Student)
		case "log-path":
			fmt.Fprintln(out, cfg.LogPath)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like the tab policy or seed file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		out := cmd.OutOrStdout()

		// Update configuration based on provided flags
		configUpdated := false
		update := func(name string, field *string, value string) {
			if !cmd.Flags().Changed(name) {
				return
			}
			fmt.Fprintf(out, "%s updated: %q -> %q\n", name, *field, value)
			*field = value
			configUpdated = true
		}

		if cmd.Flags().Changed("policy") {
			if _, err := session.ParsePolicy(setPolicy); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("default-role") && setDefaultRole != "" {
			if _, err := session.ParseRole(setDefaultRole); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("seed-path") && setSeedPath != "" {
			if _, err := models.LoadCatalog(setSeedPath); err != nil {
				return fmt.Errorf("checking seed file: %w", err)
			}
		}

		update("env", &cfg.Env, setEnv)
		update("policy", &cfg.Policy, setPolicy)
		update("seed-path", &cfg.SeedPath, setSeedPath)
		update("default-role", &cfg.DefaultRole, setDefaultRole)
		update("student", &cfg.Student, setStudent)
		update("log-path", &cfg.LogPath, setLogPath)

		// Save configuration if it was updated
		if !configUpdated {
			fmt.Fprintln(out, "No changes were made to the configuration.")
			return nil
		}

		if err := cfg.Save(globalConfigPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		globalConfig = cfg
		fmt.Fprintln(out, "Configuration updated successfully.")
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration file paths",
	Long:  "Display paths to the configuration file, log file and environment overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg := currentConfig()
		dir := filepath.Dir(globalConfigPath)

		fmt.Fprintln(out, "Config paths:")
		fmt.Fprintf(out, "- Config directory: %s\n", dir)
		fmt.Fprintf(out, "- Config file: %s\n", globalConfigPath)
		fmt.Fprintf(out, "- Log file: %s\n", cfg.ResolvedLogPath(dir))

		fmt.Fprintln(out, "\nExistence status:")
		if _, err := os.Stat(globalConfigPath); os.IsNotExist(err) {
			fmt.Fprintln(out, "- Config file: Does not exist")
		} else {
			fmt.Fprintln(out, "- Config file: Exists")
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, config.Usage())
		return nil
	},
}

// currentConfig returns a copy of the loaded configuration, or defaults
func currentConfig() *config.Config {
	if globalConfig == nil {
		return &config.Config{Env: "local", Policy: string(session.PolicyGuarded)}
	}
	cfg := *globalConfig
	return &cfg
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathsCmd)

	configSetCmd.Flags().StringVar(&setEnv, "env", "", "Set environment (local, dev, prod)")
	configSetCmd.Flags().StringVar(&setPolicy, "policy", "", "Set tab gating policy (guarded, open)")
	configSetCmd.Flags().StringVar(&setSeedPath, "seed-path", "", "Set YAML seed file; empty restores sample data")
	configSetCmd.Flags().StringVar(&setDefaultRole, "default-role", "", "Set role to log in as on start")
	configSetCmd.Flags().StringVar(&setStudent, "student", "", "Set the student to view as")
	configSetCmd.Flags().StringVar(&setLogPath, "log-path", "", "Set log file path")
}
