package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "diff <dirA> <dirB>",
		Short: "Compare the result trees of two Allure directories",
		Long: `Parse both directories and print a unified diff of their suites.
Either side may be a report or a results directory, so a generated report
can be checked against the results it was built from.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Diff(cmd.Context(), domain.DiffArgs{
				Left:         m.Path(args[0]),
				Right:        m.Path(args[1]),
				StatusFilter: m.Status(strings.ToLower(status)),
			})
		},
	}

	cmd.Flags().StringVarP(&status, statusFlagName, "s", "", "compare only test cases with this status")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
