// Package main is the CLI entry point for darkbar.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eliteGoblin/darkbar/internal/exclusion"
	"github.com/eliteGoblin/darkbar/internal/hook"
	"github.com/eliteGoblin/darkbar/internal/infra"
	"github.com/eliteGoblin/darkbar/internal/theme"
	"github.com/eliteGoblin/darkbar/internal/usecase"
)

var (
	// Version info (set via ldflags)
	Version   = "0.1.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darkbar",
	Short: "Keeps window titlebars in sync with the system light/dark theme",
	Long: `darkbar applies the immersive dark titlebar attribute to a process's
top-level windows and keeps it in sync with the system theme.

It is normally loaded into a host process by a mod-loading framework,
which drives the OnLoad/OnLoadComplete/OnUnload lifecycle and provides
the function interception service. This CLI is a harness around the
same lifecycle.`,
	Version: Version,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the patch lifecycle until interrupted",
	Long: `Runs OnLoad and OnLoadComplete, waits for SIGINT/SIGTERM, then runs
OnUnload. Without a hosting framework the interception hooks cannot be
installed and the patch only sweeps existing windows.`,
	RunE: runRun,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Apply the current system theme to this process's windows once",
	RunE:  runSweep,
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the detected system theme",
	RunE:  runTheme,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

var (
	sweepLight bool
	jsonOutput bool
)

func init() {
	sweepCmd.Flags().BoolVar(&sweepLight, "light", false, "Clear the dark attribute instead of applying the detected theme")
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := createLogger()
	defer func() { _ = logger.Sync() }()

	ctrl := buildController(logger)

	if err := ctrl.OnLoad(); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	ctrl.OnLoadComplete()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("received shutdown signal")

	ctrl.OnUnload()
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	windows, prefs, resolver := infra.NewPlatform()
	oracle := theme.NewOracle(prefs, resolver, logger)
	applicator := usecase.NewApplicator(windows, logger)

	dark := !sweepLight && oracle.IsSystemDarkMode()
	applicator.ApplyToAll(dark)

	fmt.Printf("Applied dark=%v to current process windows\n", dark)
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	_, prefs, resolver := infra.NewPlatform()
	oracle := theme.NewOracle(prefs, resolver, logger)

	if oracle.IsSystemDarkMode() {
		fmt.Println("dark")
	} else {
		fmt.Println("light")
	}
	return nil
}

func buildController(logger *zap.Logger) *hook.Controller {
	windows, prefs, resolver := infra.NewPlatform()
	oracle := theme.NewOracle(prefs, resolver, logger)
	applicator := usecase.NewApplicator(windows, logger)

	return hook.NewController(
		infra.NewFrameworkInterceptor(),
		oracle,
		applicator,
		infra.NewProcess(),
		exclusion.Default(),
		logger,
	)
}

func createLogger() *zap.Logger {
	logPath := filepath.Join(os.TempDir(), "darkbar.log")

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		// Fallback to stderr if file logging fails
		logger, _ = zap.NewProduction()
	}
	return logger
}

func runVersion(cmd *cobra.Command, args []string) {
	if jsonOutput {
		fmt.Printf(`{"version":"%s","commit":"%s","build_time":"%s"}`+"\n",
			Version, Commit, BuildTime)
	} else {
		fmt.Printf("darkbar %s (commit: %s, built: %s)\n",
			Version, Commit, BuildTime)
	}
}
