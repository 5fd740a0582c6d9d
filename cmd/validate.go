package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/longxinyang/bio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and both content dictionaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := content.Validate(); err != nil {
			return fmt.Errorf("content: %w", err)
		}
		for _, l := range content.Locales() {
			d, _ := content.Resolve(l)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects, %d learning tools, %d notes, %d publications\n",
				l, len(d.Projects), len(d.LearningTools), len(d.Notes), len(d.Publications))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
