package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/work-hours-report/internal/calendar"
	"github.com/username/work-hours-report/internal/config"
	"github.com/username/work-hours-report/internal/i18n"
	"github.com/username/work-hours-report/internal/report"
	"github.com/username/work-hours-report/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	var weekOffset int

	rootCmd := &cobra.Command{
		Use:   "work-hours-report",
		Short: "Weekly work-hours report",
		Long:  "Print a weekly work-hours report with public holiday detection for the configured country",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.LogFile != "" {
				logger, err = initFileLogger(cfg.LogFile, cfg.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, weekOffset)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Config file path")
	rootCmd.Flags().IntVarP(&weekOffset, "week", "w", 0, "Relative week, 0 is this week, -x are previous weeks")

	rootCmd.AddCommand(initCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, weekOffset int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cal, err := buildCalendar(cfg)
	if err != nil {
		return err
	}

	translator := i18n.New(cfg.ReportLanguage, logger)
	builder := report.NewBuilder(cfg, cal, dateutil.RealClock{}, translator, logger)

	week := builder.CurrentWeek() + weekOffset
	logger.Info("Building weekly report",
		zap.Int("week", week),
		zap.Int("offset", weekOffset),
		zap.String("country", cfg.Country))

	return builder.Fprint(cmd.OutOrStdout(), week)
}

// buildCalendar resolves the national holiday calendar and, when configured,
// merges in extra holidays from a local file.
func buildCalendar(cfg *config.Config) (calendar.Calendar, error) {
	countryCal, err := calendar.ResolveCountry(cfg.Continent, cfg.Country, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve holiday calendar: %w", err)
	}

	if cfg.ExtraHolidaysFile == "" {
		return countryCal, nil
	}

	fileCal := calendar.NewFileCalendar(cfg.ExtraHolidaysFile, logger)
	if err := fileCal.Load(); err != nil {
		return nil, fmt.Errorf("failed to load extra holidays: %w", err)
	}

	return calendar.NewCompositeCalendar(countryCal, fileCal), nil
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
				}
			}

			if err := config.Default().Write(configPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default config written to %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
