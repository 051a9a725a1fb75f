package domain

// Mood classifies the tone of a story beat; the UI maps it to a color.
type Mood string

const (
	MoodNormal     Mood = "normal"
	MoodDramatic   Mood = "dramatic"
	MoodCalm       Mood = "calm"
	MoodMysterious Mood = "mysterious"
	MoodEmotional  Mood = "emotional"
)

// Normalize maps unknown mood strings to MoodNormal.
func (m Mood) Normalize() Mood {
	switch m {
	case MoodDramatic, MoodCalm, MoodMysterious, MoodEmotional:
		return m
	default:
		return MoodNormal
	}
}

// Question is a fully merged quiz question: the base record plus host
// commentary and presentation extras merged in by the content store.
type Question struct {
	ID             int      `json:"id"`
	Prompt         string   `json:"question"`
	Options        []string `json:"options"`
	Correct        int      `json:"correct"`
	Emoji          string   `json:"emoji,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	IntroComment   string   `json:"introComment,omitempty"`
	CorrectComment string   `json:"correctComment,omitempty"`
	WrongComment   string   `json:"wrongComment,omitempty"`
}

// IsCorrect reports whether the zero-based option index is the right answer.
func (q Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.Correct
}

// CorrectAnswerText returns the text of the correct option.
func (q Question) CorrectAnswerText() string {
	return q.Options[q.Correct]
}

// StoryBeat is a narrative unit that fires once when the question cursor
// reaches TriggerQuestion (1-based).
type StoryBeat struct {
	TriggerQuestion int    `json:"trigger_question"`
	Speaker         string `json:"speaker"`
	Mood            Mood   `json:"mood"`
	Title           string `json:"title"`
	Text            string `json:"text"`
	Act             int    `json:"act"`
}

// Character is a named speaker appearing in story beats.
type Character struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// PlayerStats is an immutable snapshot of a player's counters.
type PlayerStats struct {
	Name          string  `json:"name"`
	Score         int     `json:"score"`
	Correct       int     `json:"correctAnswers"`
	Wrong         int     `json:"wrongAnswers"`
	Total         int     `json:"totalQuestions"`
	Accuracy      float64 `json:"accuracy"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
}

// AnswerResult summarizes the outcome of a single submitted answer.
type AnswerResult struct {
	Correct    bool `json:"correct"`
	Awarded    int  `json:"awarded"`
	TotalScore int  `json:"totalScore"`
}

// Results is the end-of-session report.
type Results struct {
	Stats          PlayerStats `json:"stats"`
	TotalQuestions int         `json:"totalQuestions"`
	Finished       bool        `json:"finished"`
	StoryCompleted bool        `json:"storyCompleted"`
}
