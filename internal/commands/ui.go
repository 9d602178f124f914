package commands

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"internconnect/internal/session"
	"internconnect/internal/ui"
)

var (
	uiRole    string
	uiStudent string
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive UI",
	Long:  "Open the tabbed terminal UI for browsing projects, profiles and opportunities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := newUIModel()
		if err != nil {
			return err
		}

		logger.Info("starting ui",
			slog.String("policy", string(model.Session.Policy)),
			slog.String("tab", string(model.Session.Tab)),
			slog.String("student", model.Student.Name))

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running ui: %w", err)
		}
		return nil
	},
}

// newUIModel assembles the UI model from flags and configuration
func newUIModel() (ui.Model, error) {
	cat, err := loadCatalog()
	if err != nil {
		return ui.Model{}, err
	}

	policy, err := resolvePolicy()
	if err != nil {
		return ui.Model{}, err
	}

	student, err := resolveStudent(cat, uiStudent)
	if err != nil {
		return ui.Model{}, err
	}

	state := session.New(policy)

	role := uiRole
	if role == "" && globalConfig != nil {
		role = globalConfig.DefaultRole
	}
	if role != "" {
		r, err := session.ParseRole(role)
		if err != nil {
			return ui.Model{}, err
		}
		if state, err = session.Transition(state, session.Login{Role: r}); err != nil {
			return ui.Model{}, err
		}
	}

	return ui.NewModel(cat, state, student, logger), nil
}

func init() {
	uiCmd.Flags().StringVar(&uiRole, "role", "", "Log in immediately as student or recruiter")
	uiCmd.Flags().StringVar(&uiStudent, "student", "", "Name of the student to view as")
}
