package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"storyquiz/internal/app"
	"storyquiz/internal/config"
	"storyquiz/internal/infra/file"
)

// NewValidateCmd builds the CLI subcommand that checks content files without
// starting a game. Useful after editing the data set.
func NewValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the content data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(*configPath)
		},
	}
}

func runValidate(configPath string) error {
	log := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	loader := file.NewLoader(log)

	questions, err := loader.LoadQuestions(cfg.DataPath(cfg.Data.QuestionsFile))
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	intros, err := loader.LoadIntroComments(cfg.DataPath(cfg.Data.IntroComments))
	if err != nil {
		return fmt.Errorf("intro comments: %w", err)
	}
	corrects, err := loader.LoadAnswerComments(cfg.DataPath(cfg.Data.CorrectComments))
	if err != nil {
		return fmt.Errorf("correct comments: %w", err)
	}
	wrongs, err := loader.LoadAnswerComments(cfg.DataPath(cfg.Data.WrongComments))
	if err != nil {
		return fmt.Errorf("wrong comments: %w", err)
	}
	beats, characters, err := loader.LoadStory(cfg.DataPath(cfg.Data.StoryFile))
	if err != nil {
		return fmt.Errorf("story: %w", err)
	}

	content, err := app.LoadContent(questions, intros, corrects, wrongs)
	if err != nil {
		return err
	}
	story := app.LoadStory(beats, characters)

	log.Info().
		Int("questions", content.Count()).
		Int("intro_comments", len(intros)).
		Int("correct_comments", len(corrects)).
		Int("wrong_comments", len(wrongs)).
		Int("story_beats", story.TotalBeats()).
		Int("characters", len(characters)).
		Msg("content is valid")
	return nil
}
