package cmd

import (
	"github.com/spf13/cobra"

	"github.com/longxinyang/bio/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual single-page portfolio server",
	Long: `Serves a single-page personal portfolio in English and Chinese with
light/dark theming. All content is compiled in; the only runtime inputs are
the server settings in portfolio.yml and PORTFOLIO_* environment variables.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}

// loadConfig reads and validates the configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
