package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/longxinyang/bio/internal/content"
)

var (
	contentLang   string
	contentFormat string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the resolved dictionary for a locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := content.ParseLocale(contentLang)
		if err != nil {
			return err
		}
		d, err := content.Resolve(l)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch contentFormat {
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(d); err != nil {
				return err
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		default:
			return fmt.Errorf("unknown format %q: must be yaml or json", contentFormat)
		}
	},
}

func init() {
	contentCmd.Flags().StringVar(&contentLang, "lang", string(content.DefaultLocale), "locale (en or zh)")
	contentCmd.Flags().StringVar(&contentFormat, "format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(contentCmd)
}
