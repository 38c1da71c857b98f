package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/internal/infrastructure/ingest"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/classifier"
	"github.com/johnquangdev/meeting-reporter/internal/usecase/pipeline"
	pkgai "github.com/johnquangdev/meeting-reporter/pkg/ai"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
	"github.com/johnquangdev/meeting-reporter/pkg/logger"
)

var (
	transcriptFile string
	renderOutput   bool
	wordWrap       int
)

var errOffTopic = errors.New("transcript is not meeting-related")

var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Turn a meeting transcript into a Markdown report",
	Long: `Reads a meeting transcript from a .txt or .pdf file (or stdin) and prints
the generated report.

Example:
  summarize --file standup.txt
  cat notes.txt | summarize --render`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummarize,
}

func init() {
	rootCmd.Flags().StringVarP(&transcriptFile, "file", "f", "", "transcript file (.txt or .pdf); reads stdin when empty")
	rootCmd.Flags().BoolVarP(&renderOutput, "render", "r", false, "render the report for the terminal")
	rootCmd.Flags().IntVar(&wordWrap, "width", 80, "word wrap width used with --render")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errOffTopic) {
			log.Printf("❌ %v", err)
		}
		os.Exit(1)
	}
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout carries only the report
	zapLogger, err := logger.New(cfg.Logging.Level, "console")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zapLogger.Sync()

	transcript, err := readTranscript(cmd.InOrStdin(), transcriptFile)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := pkgai.NewGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Validator.Enabled && !entities.IsBlank(transcript) {
		clsGen, err := pkgai.NewGeneratorWithTemperature(ctx, cfg, cfg.Validator.Temperature)
		if err != nil {
			return fmt.Errorf("failed to initialize classifier generator: %w", err)
		}
		if !classifier.New(clsGen, cfg.Validator.MinLength, zapLogger).IsMeetingContent(ctx, transcript) {
			fmt.Fprintln(out, classifier.RejectionMessage)
			return errOffTopic
		}
	}

	svc := pipeline.NewService(gen, &cfg.Pipeline, zapLogger)
	report := svc.RunPipeline(ctx, transcript)

	if renderOutput {
		report, err = renderMarkdown(report, wordWrap)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(out, report)
		return nil
	}

	fmt.Fprintln(out, report)
	return nil
}

func readTranscript(stdin io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	return ingest.ExtractText(filepath.Base(path), f, info.Size())
}

// renderMarkdown styles md for a terminal with glamour's auto-detected theme
func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
