package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"storyquiz/internal/app"
	"storyquiz/internal/config"
	"storyquiz/internal/infra/file"
	"storyquiz/internal/infra/memory"
	"storyquiz/internal/ui"
)

// NewPlayCmd builds the CLI subcommand that runs the game.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		playerName string
		shuffle    bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(*configPath, playerName, shuffle)
		},
	}
	cmd.Flags().StringVar(&playerName, "name", "", "player name (skips the name prompt)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle question order (free play, disables story beats)")
	return cmd
}

func runPlay(configPath, playerName string, shuffle bool) error {
	log := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	content, story, err := assembleContent(cfg, log)
	if err != nil {
		return err
	}

	scoring := app.Scoring{
		BasePoints:      cfg.Scoring.BasePoints,
		StreakBonus:     cfg.Scoring.StreakBonus,
		StreakThreshold: cfg.Scoring.StreakThreshold,
	}
	name := playerName
	if name == "" {
		name = cfg.Game.DefaultPlayer
	}
	session, err := app.NewSession(content, story, scoring, name)
	if err != nil {
		return err
	}

	if shuffle {
		if story.TotalBeats() > 0 {
			log.Warn().Msg("shuffle requested but story content is loaded, keeping original order")
		} else {
			session.ShuffleQuestions()
		}
	}

	console := ui.NewConsole(session, cfg.Game.Title, os.Stdin, os.Stdout)
	if playerName == "" {
		console.Welcome(cfg.Game.DefaultPlayer)
	}
	console.Run()
	return nil
}

// assembleContent loads content from the configured data files, falling back
// to the built-in sample set when no questions file is present.
func assembleContent(cfg config.Config, log zerolog.Logger) (*app.ContentStore, *app.StoryIndex, error) {
	loader := file.NewLoader(log)

	questionsPath := cfg.DataPath(cfg.Data.QuestionsFile)
	questionRecords, err := loader.LoadQuestions(questionsPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", questionsPath).Msg("questions file not found, using built-in sample content")
		return assembleSampleContent()
	}
	if err != nil {
		return nil, nil, err
	}

	intros, err := loader.LoadIntroComments(cfg.DataPath(cfg.Data.IntroComments))
	if err != nil {
		return nil, nil, err
	}
	corrects, err := loader.LoadAnswerComments(cfg.DataPath(cfg.Data.CorrectComments))
	if err != nil {
		return nil, nil, err
	}
	wrongs, err := loader.LoadAnswerComments(cfg.DataPath(cfg.Data.WrongComments))
	if err != nil {
		return nil, nil, err
	}
	beats, characters, err := loader.LoadStory(cfg.DataPath(cfg.Data.StoryFile))
	if err != nil {
		return nil, nil, err
	}

	content, err := app.LoadContent(questionRecords, intros, corrects, wrongs)
	if err != nil {
		return nil, nil, err
	}
	return content, app.LoadStory(beats, characters), nil
}

func assembleSampleContent() (*app.ContentStore, *app.StoryIndex, error) {
	content, err := app.LoadContent(
		memory.SampleQuestions(),
		memory.SampleIntroComments(),
		memory.SampleCorrectComments(),
		memory.SampleWrongComments(),
	)
	if err != nil {
		return nil, nil, err
	}
	return content, app.LoadStory(memory.SampleStoryBeats(), memory.SampleCharacters()), nil
}
