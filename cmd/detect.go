package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <dir>",
		Short: "Report whether a directory is an allure-report or allure-results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Detect(cmd.Context(), domain.DetectArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
