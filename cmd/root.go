// Package cmd provides the root command and CLI setup for allure-analysis.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	"github.com/huixin2022/allure-analysis-mcp/internal/controller"
	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
	"github.com/huixin2022/allure-analysis-mcp/internal/schema"
)

// Process exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

var (
	formatFlag       string
	logFileFlag      string
	verboseFlag      bool
	defaultSuiteFlag string
	workersFlag      int
)

// newWorkflow builds the workflow behind a command. The UI depends on the
// --format flag, so it is only known once flags are parsed.
var newWorkflow = buildWorkflow

func buildWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	format, ok := m.ParseFormat(strings.ToLower(viper.GetString(formatKey)))
	if !ok {
		allowed := make([]string, 0, len(m.Formats))
		for _, f := range m.Formats {
			allowed = append(allowed, string(f))
		}

		return nil, &domain.InvalidArgumentError{Name: "format", Value: viper.GetString(formatKey), Allowed: allowed}
	}

	tty := false
	if out, ok := cmd.OutOrStdout().(*os.File); ok {
		tty = controller.IsTTY(out)
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		adapter.NewReportStore(),
		controller.NewUI(cmd, format, tty),
		domain.NewParserFactory(fsAdapter, parserConfig()),
		domain.NewDetector(fsAdapter),
		schema.NewTreeValidator(),
		viewConfig(),
	), nil
}

const rootLongDescription = `allure-analysis reads Allure test output and turns it into one canonical
result tree of suites, test cases and steps.

It accepts either layout Allure produces:
  - a generated allure-report directory (data/suites.json)
  - a raw allure-results directory (*-result.json files)`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "allure-analysis",
		Short:        "Parse and summarize Allure test results",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatKey), "output format: json, yaml, table or tui")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&defaultSuiteFlag, defaultSuiteFlagName, viper.GetString(parserDefaultSuiteKey), "suite name for test cases without one")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(defaultSuiteFlagName), parserDefaultSuiteKey)

	cmd.PersistentFlags().IntVar(&workersFlag, workersFlagName, viper.GetInt(parserWorkersKey), "number of result files read concurrently")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(workersFlagName), parserWorkersKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps invalid arguments to the usage exit code and everything else to failure.
func exitCode(err error) int {
	var invalid *domain.InvalidArgumentError
	if errors.As(err, &invalid) {
		return exitUsage
	}

	return exitFailure
}
