package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	var (
		status   string
		out      string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "parse <dir>",
		Short: "Parse an Allure directory into the canonical result tree",
		Long: `Parse an allure-report or allure-results directory into the canonical
result tree. The tree is written to --out when given, otherwise displayed
in the selected --format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Parse(cmd.Context(), domain.ParseArgs{
				Path:         m.Path(args[0]),
				StatusFilter: m.Status(strings.ToLower(status)),
				Output:       m.Path(out),
				OutputFormat: outputFormat(out, viper.GetString(formatKey)),
				Validate:     validate,
			})
		},
	}

	cmd.Flags().StringVarP(&status, statusFlagName, "s", "", "keep only test cases with this status")
	cmd.Flags().StringVarP(&out, outFlagName, "o", "", "write the tree to this file instead of stdout")
	cmd.Flags().BoolVar(&validate, validateFlagName, false, "validate the tree against the embedded JSON schema")

	return cmd
}

// outputFormat picks YAML for .yaml/.yml files or when the yaml format is
// selected, and JSON otherwise.
func outputFormat(out, format string) m.Format {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".yaml", ".yml":
		return m.FormatYAML
	}

	if m.Format(strings.ToLower(format)) == m.FormatYAML {
		return m.FormatYAML
	}

	return m.FormatJSON
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
