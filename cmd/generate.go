package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Raj-Mandhyan/EduGenie3/internal/console"
	"github.com/Raj-Mandhyan/EduGenie3/internal/controller"
	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request a single lesson and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		log, err := logger.New(s.LogMode, s.LogFile)
		if err != nil {
			return fmt.Errorf("open logger: %w", err)
		}
		defer log.Sync()

		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}

		port := console.NewPort(form, cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctrl := controller.New(port, lesson.NewClient(s.clientConfig()), log)

		reqErr := ctrl.Submit(cmd.Context())
		if err := port.Flush(); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		if reqErr != nil {
			// Already shown to the user through the port.
			cmd.SilenceErrors = true
			return reqErr
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.String("topic", "", "Lesson topic, sent verbatim")
	f.String("difficulty", string(lesson.DifficultyBeginner), "Difficulty: beginner, intermediate or advanced")
	f.Bool("diagram", false, "Request a diagram")
	f.Bool("audio", false, "Request audio narration")
	f.Bool("video", false, "Request a video")
}

func formFromFlags(cmd *cobra.Command) (console.Form, error) {
	flags := cmd.Flags()
	topic, _ := flags.GetString("topic")
	difficulty, _ := flags.GetString("difficulty")

	if !slices.Contains(lesson.Difficulties(), lesson.Difficulty(difficulty)) {
		return console.Form{}, fmt.Errorf("invalid difficulty %q", difficulty)
	}

	form := console.Form{Topic: topic, Difficulty: difficulty}
	for _, f := range lesson.AllFormats {
		if on, _ := flags.GetBool(string(f)); on {
			form.Formats = append(form.Formats, f)
		}
	}
	return form, nil
}
