package app

import (
	"storyquiz/internal/domain"
)

// ContentStore holds the ordered, fully merged question sequence for a
// session. It is built once and read-only afterwards. Not safe for concurrent
// use; the session model is single-threaded.
type ContentStore struct {
	questions []domain.Question
}

// LoadContent validates question records, builds the ordered question list
// and merges the auxiliary comment records by question id.
//
// Validation is fatal: any malformed question record fails the whole load and
// no partial state is kept. The merge is lenient: auxiliary records without a
// matching question are ignored, questions without auxiliary records keep
// blank commentary.
func LoadContent(
	questions []domain.QuestionRecord,
	intros map[int]domain.IntroCommentRecord,
	corrects map[int]domain.CommentRecord,
	wrongs map[int]domain.CommentRecord,
) (*ContentStore, error) {
	merged := make([]domain.Question, 0, len(questions))
	for i, rec := range questions {
		if err := validateQuestionRecord(i, rec); err != nil {
			return nil, err
		}
		q := domain.Question{
			ID:      rec.ID,
			Prompt:  rec.Question,
			Options: append([]string(nil), rec.Options...),
			Correct: rec.Correct,
		}
		if intro, ok := intros[rec.ID]; ok {
			q.Emoji = intro.Emoji
			q.IntroComment = intro.Text
			q.Tags = append([]string(nil), intro.Tags...)
		}
		if c, ok := corrects[rec.ID]; ok {
			q.CorrectComment = c.Text
		}
		if w, ok := wrongs[rec.ID]; ok {
			q.WrongComment = w.Text
		}
		merged = append(merged, q)
	}
	return &ContentStore{questions: merged}, nil
}

func validateQuestionRecord(pos int, rec domain.QuestionRecord) error {
	if rec.Question == "" {
		return domain.MalformedContentf("question record %d (id=%d): empty question text", pos, rec.ID)
	}
	if len(rec.Options) < 2 {
		return domain.MalformedContentf("question record %d (id=%d): need at least 2 options, got %d", pos, rec.ID, len(rec.Options))
	}
	if rec.Correct < 0 || rec.Correct >= len(rec.Options) {
		return domain.MalformedContentf("question record %d (id=%d): correct index %d out of range [0,%d)", pos, rec.ID, rec.Correct, len(rec.Options))
	}
	return nil
}

// QuestionAt returns the question at the given zero-based position.
func (s *ContentStore) QuestionAt(index int) (domain.Question, bool) {
	if index < 0 || index >= len(s.questions) {
		return domain.Question{}, false
	}
	return s.questions[index], true
}

// Count returns the number of loaded questions.
func (s *ContentStore) Count() int {
	return len(s.questions)
}

// Questions returns a copy of the ordered question list so callers can
// reorder without touching the shared store.
func (s *ContentStore) Questions() []domain.Question {
	return append([]domain.Question(nil), s.questions...)
}
