// Package file reads quiz and story content from JSON files on disk. It is
// the content-loading collaborator: it hands structured records to the core
// and owns all file-existence and structural decoding rules.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"storyquiz/internal/domain"
)

// Loader reads content files and reports data problems through its logger.
type Loader struct {
	log zerolog.Logger
}

func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

type questionsFile struct {
	Questions []rawQuestion `json:"questions"`
}

// rawQuestion uses pointer fields so missing keys are distinguishable from
// zero values; the distinction is what makes missing-field errors possible.
type rawQuestion struct {
	ID       *int      `json:"id"`
	Question *string   `json:"question"`
	Options  *[]string `json:"options"`
	Correct  *int      `json:"correct"`
}

// LoadQuestions reads the questions file. The file is required and every
// record must carry id, question, options and correct.
func (l *Loader) LoadQuestions(path string) ([]domain.QuestionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var parsed questionsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.MalformedContentf("decode %s: %v", path, err)
	}

	records := make([]domain.QuestionRecord, 0, len(parsed.Questions))
	for i, raw := range parsed.Questions {
		switch {
		case raw.ID == nil:
			return nil, domain.MalformedContentf("question %d in %s: missing id", i, path)
		case raw.Question == nil:
			return nil, domain.MalformedContentf("question %d in %s: missing question", i, path)
		case raw.Options == nil:
			return nil, domain.MalformedContentf("question %d in %s: missing options", i, path)
		case raw.Correct == nil:
			return nil, domain.MalformedContentf("question %d in %s: missing correct", i, path)
		}
		records = append(records, domain.QuestionRecord{
			ID:       *raw.ID,
			Question: *raw.Question,
			Options:  *raw.Options,
			Correct:  *raw.Correct,
		})
	}
	return records, nil
}

type introCommentsFile struct {
	Comments map[string]domain.IntroCommentRecord `json:"comments"`
}

// LoadIntroComments reads the host's per-question lead-ins. A missing file is
// fine: the game just plays without intro commentary.
func (l *Loader) LoadIntroComments(path string) (map[int]domain.IntroCommentRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.log.Warn().Str("path", path).Msg("intro comments file not found, continuing without")
		return map[int]domain.IntroCommentRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read intro comments: %w", err)
	}
	var parsed introCommentsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.MalformedContentf("decode %s: %v", path, err)
	}
	return remapByID(path, parsed.Comments)
}

type answerCommentsFile struct {
	Comments map[string]domain.CommentRecord `json:"comments"`
}

// LoadAnswerComments reads a correct- or wrong-answer comment file. Missing
// files are fine, same as intro comments.
func (l *Loader) LoadAnswerComments(path string) (map[int]domain.CommentRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.log.Warn().Str("path", path).Msg("answer comments file not found, continuing without")
		return map[int]domain.CommentRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read answer comments: %w", err)
	}
	var parsed answerCommentsFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.MalformedContentf("decode %s: %v", path, err)
	}
	return remapByID(path, parsed.Comments)
}

type storyFile struct {
	Beats      []domain.StoryBeatRecord          `json:"beats"`
	Characters map[string]domain.CharacterRecord `json:"characters"`
}

// LoadStory reads the story file. A missing file means a story-less free-play
// session, which is allowed.
func (l *Loader) LoadStory(path string) ([]domain.StoryBeatRecord, map[string]domain.CharacterRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.log.Warn().Str("path", path).Msg("story file not found, playing without story")
		return nil, map[string]domain.CharacterRecord{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read story file: %w", err)
	}
	var parsed storyFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, nil, domain.MalformedContentf("decode %s: %v", path, err)
	}

	seen := make(map[int]struct{}, len(parsed.Beats))
	for _, beat := range parsed.Beats {
		if _, dup := seen[beat.TriggerQuestion]; dup {
			// First one wins downstream; surface the collision so bad data is visible.
			l.log.Warn().Int("trigger", beat.TriggerQuestion).Str("title", beat.Title).
				Msg("duplicate story beat trigger, keeping the first")
			continue
		}
		seen[beat.TriggerQuestion] = struct{}{}
	}
	if parsed.Characters == nil {
		parsed.Characters = map[string]domain.CharacterRecord{}
	}
	return parsed.Beats, parsed.Characters, nil
}

// remapByID converts string question-id keys to integers.
func remapByID[V any](path string, in map[string]V) (map[int]V, error) {
	out := make(map[int]V, len(in))
	for key, value := range in {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, domain.MalformedContentf("comment key %q in %s is not a question id", key, path)
		}
		out[id] = value
	}
	return out, nil
}
