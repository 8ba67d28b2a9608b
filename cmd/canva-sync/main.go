package main

import (
	"fmt"
	"os"

	canvasync "github.com/hellenic-development/canva-sync"
	"github.com/hellenic-development/canva-sync/pkg/canva"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = canva.Version

var (
	apiKey       string
	outputDir    string
	exportFormat string
	logJSON      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "canva-sync <design-url>",
		Short: "Download Canva designs to local files",
		Long:  "A tool to download Canva designs via the Canva export API: point it at a share link and it saves the exported design to a local directory",
		Args:  cobra.ExactArgs(1),
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "Canva API key (falls back to the CANVA_API_KEY environment variable)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", canvasync.DefaultOutputDir, "Output directory for downloaded designs")
	rootCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Export format: pdf, png, jpg")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs instead of colored terminal output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("canva-sync version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// run drives one sync. Sync failures are logged and the process exits
// normally; only cobra's own usage errors produce a non-zero status.
func run(cmd *cobra.Command, args []string) {
	logger, flush := newLogger(logJSON)
	defer flush()

	if !logJSON {
		cyan := color.New(color.FgCyan)
		cyan.Println("\n🎨 Canva Design Sync")
		cyan.Println("====================")
		cyan.Println()
	}

	key := apiKey
	if key == "" {
		key = os.Getenv("CANVA_API_KEY")
	}
	if key == "" {
		logger.Errorf("No API key provided. Use --api-key or set the CANVA_API_KEY environment variable.")
		return
	}

	format, err := canva.ParseFormat(exportFormat)
	if err != nil {
		logger.Errorf("Error: %v", err)
		return
	}

	result, err := canvasync.Run(canvasync.Options{
		APIKey:    key,
		DesignURL: args[0],
		OutputDir: outputDir,
		Format:    format,
		Logger:    logger,
	})
	if err != nil {
		logger.Errorf("Sync failed: %v", err)
		return
	}

	if logJSON {
		logger.Infof("Sync completed: %s (%d bytes)", result.OutputPath, result.Bytes)
		return
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cyan.Println("\n📦 Sync Summary:")
	fmt.Printf("  • Design: %s\n", result.DesignID)
	fmt.Printf("  • Format: %s\n", format)
	fmt.Printf("  • Size: %d bytes\n", result.Bytes)

	green.Printf("\n✨ Design saved to %s\n\n", result.OutputPath)
}

// newLogger selects the CLI logging backend. The flush callback must be
// called before exit so buffered JSON output reaches stderr.
func newLogger(jsonMode bool) (canvasync.Logger, func()) {
	if !jsonMode {
		return &cliLogger{}, func() {}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	logger := zap.New(core)

	return &zapLogger{sugar: logger.Sugar()}, func() { _ = logger.Sync() }
}

// cliLogger implements canvasync.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}

// zapLogger implements canvasync.Logger on a zap SugaredLogger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
