package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pcawg2/payload-tools/internal/adapters/repository"
	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/services"
	"github.com/pcawg2/payload-tools/pkg/config"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var (
	// Global flags
	configPath string
	outputDir  string
	verbose    bool

	appConfig *config.Config
	logger    *zap.Logger

	// Adapters
	documentStore *repository.JSONRepository
	fileInspector *services.FileInspector
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "payload-tools",
	Short: "Build and submit genomics data payloads",
	Long: ui.StyleTitle.Render("payload-tools") + " - submission payload builder\n\n" +
		"Generates JSON payloads for aligned reads and variant calls, derives\n" +
		"object ids and storage keys, and uploads payloads to object storage.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { syncLogger() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		syncLogger()
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.AddCommand(cephSubmitCmd)
	rootCmd.AddCommand(dnaAlignmentCmd)
	rootCmd.AddCommand(variantCallingCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/payload-tools/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory payloads are written to (default: working directory)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initializeApp loads configuration and wires the shared adapters
func initializeApp(cmd *cobra.Command, args []string) error {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
		path = p
	}
	configPath = path

	// version and config init must work even when the config file is broken
	var cfg *config.Config
	if cmd == versionCmd || cmd == configInitCmd {
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	l, err := buildLogger(cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	documentStore = repository.NewJSONRepository(cfg.OutputDir)
	fileInspector = services.NewFileInspector(cfg.ChunkSizeBytes)

	return nil
}

// buildLogger creates a production zap logger writing to stderr
func buildLogger(level string, debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// exitCode maps an error to the process exit status.
// Subprocess failures mirror the child's code, everything else exits 1.
func exitCode(err error) int {
	var cmdErr *domain.ExternalCommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode()
	}
	return 1
}
