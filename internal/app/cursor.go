package app

import (
	"math/rand"
	"time"

	"storyquiz/internal/domain"
)

// QuizCursor owns the current-question pointer over an ordered question
// sequence. The index stays clamped to [0, count-1]; with zero questions
// every lookup reports false.
type QuizCursor struct {
	questions []domain.Question
	index     int
	rnd       *rand.Rand
}

// NewQuizCursor takes its own copy of the sequence so Shuffle never reorders
// the shared content store.
func NewQuizCursor(questions []domain.Question) *QuizCursor {
	return &QuizCursor{
		questions: append([]domain.Question(nil), questions...),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Current returns the question under the cursor.
func (c *QuizCursor) Current() (domain.Question, bool) {
	return c.QuestionAt(c.index)
}

// QuestionAt returns the question at a zero-based position.
func (c *QuizCursor) QuestionAt(index int) (domain.Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return domain.Question{}, false
	}
	return c.questions[index], true
}

// Advance moves to the next question and returns it. At the last question it
// returns false and leaves the cursor in place.
func (c *QuizCursor) Advance() (domain.Question, bool) {
	if !c.HasNext() {
		return domain.Question{}, false
	}
	c.index++
	return c.questions[c.index], true
}

func (c *QuizCursor) HasNext() bool {
	return c.index < len(c.questions)-1
}

func (c *QuizCursor) HasPrevious() bool {
	return c.index > 0
}

// GoTo moves the cursor to index if it is in range; out-of-range is a no-op
// reported as false.
func (c *QuizCursor) GoTo(index int) bool {
	if index < 0 || index >= len(c.questions) {
		return false
	}
	c.index = index
	return true
}

func (c *QuizCursor) GoToFirst() {
	c.index = 0
}

func (c *QuizCursor) GoToLast() {
	if len(c.questions) > 0 {
		c.index = len(c.questions) - 1
	}
}

// Progress returns the 1-based current question number and the total.
func (c *QuizCursor) Progress() (int, int) {
	return c.index + 1, len(c.questions)
}

// ProgressPercent returns completion as a percentage of questions reached.
func (c *QuizCursor) ProgressPercent() float64 {
	if len(c.questions) == 0 {
		return 0.0
	}
	return float64(c.index+1) / float64(len(c.questions)) * 100
}

// Shuffle randomly permutes the question order and rewinds to the first
// question. Positions no longer line up with story-beat triggers afterwards,
// so story-driven sessions must not shuffle.
func (c *QuizCursor) Shuffle() {
	c.rnd.Shuffle(len(c.questions), func(i, j int) {
		c.questions[i], c.questions[j] = c.questions[j], c.questions[i]
	})
	c.index = 0
}

// Count returns the number of questions under the cursor.
func (c *QuizCursor) Count() int {
	return len(c.questions)
}
