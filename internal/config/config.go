package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Game struct {
		Title         string `yaml:"title" env:"STORYQUIZ_TITLE"`
		DefaultPlayer string `yaml:"default_player" env:"STORYQUIZ_PLAYER"`
	} `yaml:"game"`
	Data struct {
		Dir             string `yaml:"dir" env:"STORYQUIZ_DATA_DIR"`
		QuestionsFile   string `yaml:"questions_file"`
		IntroComments   string `yaml:"intro_comments_file"`
		CorrectComments string `yaml:"correct_comments_file"`
		WrongComments   string `yaml:"wrong_comments_file"`
		StoryFile       string `yaml:"story_file"`
	} `yaml:"data"`
	Scoring struct {
		BasePoints      int `yaml:"base_points" env:"STORYQUIZ_BASE_POINTS"`
		StreakBonus     int `yaml:"streak_bonus" env:"STORYQUIZ_STREAK_BONUS"`
		StreakThreshold int `yaml:"streak_threshold" env:"STORYQUIZ_STREAK_THRESHOLD"`
	} `yaml:"scoring"`
}

// Load reads YAML config from path, applies environment overrides and fills
// in defaults. A missing file is not an error; the defaults stand alone.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game.Title == "" {
		c.Game.Title = "The Memory Show"
	}
	if c.Game.DefaultPlayer == "" {
		c.Game.DefaultPlayer = "Alex"
	}
	if c.Data.QuestionsFile == "" {
		c.Data.QuestionsFile = "questions.json"
	}
	if c.Data.IntroComments == "" {
		c.Data.IntroComments = filepath.Join("comments", "intro_comments.json")
	}
	if c.Data.CorrectComments == "" {
		c.Data.CorrectComments = filepath.Join("comments", "correct_comments.json")
	}
	if c.Data.WrongComments == "" {
		c.Data.WrongComments = filepath.Join("comments", "wrong_comments.json")
	}
	if c.Data.StoryFile == "" {
		c.Data.StoryFile = "story.json"
	}
	if c.Scoring.BasePoints == 0 {
		c.Scoring.BasePoints = 10
	}
	if c.Scoring.StreakBonus == 0 {
		c.Scoring.StreakBonus = 5
	}
	if c.Scoring.StreakThreshold == 0 {
		c.Scoring.StreakThreshold = 3
	}
}

// DataPath resolves a data file relative to the configured data directory.
func (c *Config) DataPath(file string) string {
	if c.Data.Dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Data.Dir, file)
}
