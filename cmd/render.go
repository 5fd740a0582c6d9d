package cmd

import (
	"github.com/spf13/cobra"

	"github.com/longxinyang/bio/internal/content"
	"github.com/longxinyang/bio/internal/ui"
	"github.com/longxinyang/bio/internal/view"
)

var (
	renderLang string
	renderDark bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the page HTML to stdout",
	Long:  `Renders the page as a fresh load would, for the given locale and theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := content.ParseLocale(renderLang)
		if err != nil {
			return err
		}
		r, err := view.New(view.Options{})
		if err != nil {
			return err
		}
		state := ui.Initial(renderDark)
		state.Locale = l
		page, err := r.Page(state, "")
		if err != nil {
			return err
		}
		return r.Render(cmd.OutOrStdout(), page)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderLang, "lang", string(content.DefaultLocale), "locale (en or zh)")
	renderCmd.Flags().BoolVar(&renderDark, "dark", false, "render with the dark theme")
	rootCmd.AddCommand(renderCmd)
}
