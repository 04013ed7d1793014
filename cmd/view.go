package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "view <dir>",
		Short: "Show a size-bounded view of an Allure directory",
		Long: `Show an Allure directory in one of four modes:
  - summary   counts, pass rate and failed tests (ignores --status)
  - compact   non-passed test cases with their failed steps
  - detailed  test cases with truncated step trees
  - full      the whole tree, degraded to detailed when too large`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{
				Path:         m.Path(args[0]),
				Mode:         m.Mode(strings.ToLower(viper.GetString(viewModeKey))),
				StatusFilter: m.Status(strings.ToLower(status)),
			})
		},
	}

	cmd.Flags().StringP(modeFlagName, "m", viper.GetString(viewModeKey), "view mode: summary, compact, detailed or full")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), viewModeKey)

	cmd.Flags().StringVarP(&status, statusFlagName, "s", "", "keep only test cases with this status")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
