package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/huixin2022/allure-analysis-mcp/internal/domain"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "allure-analysis"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	formatFlagName       = "format"
	logFileFlagName      = "log-file"
	verboseFlagName      = "verbose"
	defaultSuiteFlagName = "default-suite"
	workersFlagName      = "workers"
	statusFlagName       = "status"
	modeFlagName         = "mode"
	outFlagName          = "out"
	validateFlagName     = "validate"

	formatKey               = "format"
	parserDefaultSuiteKey   = "parser.default_suite"
	parserStatusPriorityKey = "parser.status_priority"
	parserWorkersKey        = "parser.workers"

	viewModeKey             = "view.mode"
	viewMaxTestsKey         = "view.max_tests"
	viewMaxStepDepthKey     = "view.max_step_depth"
	viewMaxStepsPerLevelKey = "view.max_steps_per_level"
	viewMaxFailedTestsKey   = "view.max_failed_tests"
	viewMaxFailedStepsKey   = "view.max_failed_steps"
	viewFullSizeLimitKey    = "view.full_size_limit"
	viewFullMaxTestsKey     = "view.full_max_tests"
	viewFullMaxStepDepthKey = "view.full_max_step_depth"

	defaultFormat = string(m.FormatJSON)
	defaultMode   = string(m.ModeSummary)

	envPrefix = "ALLURE_ANALYSIS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".allure-analysis.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	globalLogger  *slog.Logger
	configReadErr error
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(formatKey, defaultFormat)

	parser := domain.DefaultConfig()
	viper.SetDefault(parserDefaultSuiteKey, parser.DefaultSuiteName)
	viper.SetDefault(parserStatusPriorityKey, statusStrings(parser.StatusPriority))
	viper.SetDefault(parserWorkersKey, parser.Workers)

	view := domain.DefaultViewConfig()
	viper.SetDefault(viewModeKey, defaultMode)
	viper.SetDefault(viewMaxTestsKey, view.MaxTests)
	viper.SetDefault(viewMaxStepDepthKey, view.MaxStepDepth)
	viper.SetDefault(viewMaxStepsPerLevelKey, view.MaxStepsPerLevel)
	viper.SetDefault(viewMaxFailedTestsKey, view.MaxFailedTests)
	viper.SetDefault(viewMaxFailedStepsKey, view.MaxFailedSteps)
	viper.SetDefault(viewFullSizeLimitKey, view.FullSizeLimit)
	viper.SetDefault(viewFullMaxTestsKey, view.FullMaxTests)
	viper.SetDefault(viewFullMaxStepDepthKey, view.FullMaxStepDepth)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// Reported once the logger exists.
		configReadErr = err
	}
}

func statusStrings(statuses []m.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}

	return out
}

// parserConfig builds the parser settings from config, env and flags.
// Unset or non-positive values keep their defaults.
func parserConfig() domain.Config {
	config := domain.DefaultConfig()

	if name := strings.TrimSpace(viper.GetString(parserDefaultSuiteKey)); name != "" {
		config.DefaultSuiteName = name
	}

	if priority := viper.GetStringSlice(parserStatusPriorityKey); len(priority) > 0 {
		config.StatusPriority = make([]m.Status, 0, len(priority))
		for _, status := range priority {
			config.StatusPriority = append(config.StatusPriority, m.Status(strings.ToLower(strings.TrimSpace(status))))
		}
	}

	if workers := viper.GetInt(parserWorkersKey); workers > 0 {
		config.Workers = workers
	}

	return config
}

// viewConfig builds the view limits from config and env.
func viewConfig() domain.ViewConfig {
	config := domain.DefaultViewConfig()

	positive(&config.MaxTests, viewMaxTestsKey)
	positive(&config.MaxStepDepth, viewMaxStepDepthKey)
	positive(&config.MaxStepsPerLevel, viewMaxStepsPerLevelKey)
	positive(&config.MaxFailedTests, viewMaxFailedTestsKey)
	positive(&config.MaxFailedSteps, viewMaxFailedStepsKey)
	positive(&config.FullSizeLimit, viewFullSizeLimitKey)
	positive(&config.FullMaxTests, viewFullMaxTestsKey)
	positive(&config.FullMaxStepDepth, viewFullMaxStepDepthKey)

	return config
}

func positive(target *int, key string) {
	if v := viper.GetInt(key); v > 0 {
		*target = v
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug. Every
// record carries the run_id of this invocation.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler).With("run_id", uuid.NewString())
	slog.SetDefault(globalLogger)

	if configReadErr != nil {
		slog.Warn("Ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", configReadErr)
	}
}
