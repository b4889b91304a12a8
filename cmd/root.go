package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tavla-tui/tavla/internal/config"
	"github.com/tavla-tui/tavla/internal/launcher"
)

var (
	flagDatabasePath   string
	flagHighlightColor string
)

var rootCmd = &cobra.Command{
	Use:   "tavla",
	Short: "Tavla - a personal kanban board in the terminal",
	Long: `Tavla is a terminal kanban board. Boards hold ordered columns, columns
hold cards, and every change is saved immediately. Cards and boards are
written in your $EDITOR.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return launcher.Launch(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagDatabasePath, "database", "d", "",
		"path to the database file (env TAVLA_DATABASE_PATH)")
	rootCmd.Flags().StringVarP(&flagHighlightColor, "highlight-color", "c", "",
		"hex color for the selection highlight (env TAVLA_HIGHLIGHT_COLOR)")
}

// resolveConfig layers the settings: config file, then environment, then
// flags. The resulting value is the only configuration the rest of the
// program ever sees.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("TAVLA_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TAVLA_HIGHLIGHT_COLOR"); v != "" {
		cfg.HighlightColor = v
	}

	if cmd.Flags().Changed("database") {
		cfg.DatabasePath = flagDatabasePath
	}
	if cmd.Flags().Changed("highlight-color") {
		cfg.HighlightColor = flagHighlightColor
	}
	return cfg, nil
}

func Execute() error {
	return rootCmd.Execute()
}
