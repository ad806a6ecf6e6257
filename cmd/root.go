package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Raj-Mandhyan/EduGenie3/internal/app"
	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "edugenie",
	Short: "Request generated lessons from the terminal",
	Long:  "EduGenie sends a topic, difficulty and desired formats to a lesson generation service and shows the lesson it returns.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environment variables win over it.
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(keyEndpoint, lesson.DefaultEndpoint, "Lesson generation endpoint (overrides EDUGENIE_ENDPOINT)")
	flags.Duration(keyTimeout, 0, "Request timeout, 0 waits indefinitely (overrides EDUGENIE_TIMEOUT)")
	flags.String(keyLogFile, "", "Diagnostic log file (overrides EDUGENIE_LOG_FILE)")
	flags.String(keyLogMode, "dev", "Log encoding: dev or prod (overrides EDUGENIE_LOG_MODE)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp resolves settings, builds the lesson client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics always go to a file.
	logPath := s.LogFile
	if logPath == "" {
		if logPath, err = logger.DefaultPath(); err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, err := logger.New(s.LogMode, logPath)
	if err != nil {
		return fmt.Errorf("open logger: %w", err)
	}
	defer log.Sync()

	client := lesson.NewClient(s.clientConfig())
	log.Info("starting", "endpoint", client.Endpoint(), "timeout", s.Timeout.String())

	return app.Run(app.Options{
		Generator: client,
		Logger:    log,
		Endpoint:  client.Endpoint(),
	})
}
