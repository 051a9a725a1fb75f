package app

import "storyquiz/internal/domain"

// State is the session lifecycle phase.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
	StateAborted    State = "aborted"
)

// Scoring is the immutable scoring configuration for a session.
type Scoring struct {
	BasePoints      int
	StreakBonus     int
	StreakThreshold int
}

// DefaultScoring mirrors the classic show rules: 10 points per answer, 5
// bonus points once three answers in a row are already on the board.
func DefaultScoring() Scoring {
	return Scoring{BasePoints: 10, StreakBonus: 5, StreakThreshold: 3}
}

// Session composes the content store, story index, player and cursor into
// the turn-based game state machine:
//
//	NotStarted -> InProgress -> Finished
//	                  `-> Aborted (player quits early)
//
// The session owns its player and cursor; content and story are shared
// read-only collaborators (the story shown-set being the one exception,
// mutated only through MarkBeatShown).
type Session struct {
	content *ContentStore
	story   *StoryIndex
	scoring Scoring
	player  *Player
	cursor  *QuizCursor
	state   State
}

// NewSession builds a session over loaded content. Content with zero
// questions is rejected; a session must never start on incomplete content.
func NewSession(content *ContentStore, story *StoryIndex, scoring Scoring, playerName string) (*Session, error) {
	if content.Count() == 0 {
		return nil, domain.ErrNoQuestions
	}
	return &Session{
		content: content,
		story:   story,
		scoring: scoring,
		player:  NewPlayer(playerName),
		cursor:  NewQuizCursor(content.Questions()),
		state:   StateNotStarted,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// SetPlayerName renames the player; allowed before or during play.
func (s *Session) SetPlayerName(name string) {
	s.player.SetName(name)
}

// Start moves the session to InProgress, rewinds the cursor and clears the
// story shown-set.
func (s *Session) Start() {
	s.state = StateInProgress
	s.cursor.GoToFirst()
	s.story.ResetShown()
}

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	return s.cursor.Current()
}

// Progress returns the 1-based question number and total count.
func (s *Session) Progress() (int, int) {
	return s.cursor.Progress()
}

// ProgressPercent returns how far through the quiz the cursor is.
func (s *Session) ProgressPercent() float64 {
	return s.cursor.ProgressPercent()
}

// SubmitAnswer scores the given zero-based option index against the current
// question. This is the only place the score mutates. Outside InProgress, or
// with no current question, it is a no-op reporting false.
func (s *Session) SubmitAnswer(optionIndex int) (domain.AnswerResult, bool) {
	if s.state != StateInProgress {
		return domain.AnswerResult{}, false
	}
	question, ok := s.cursor.Current()
	if !ok {
		return domain.AnswerResult{}, false
	}

	result := domain.AnswerResult{Correct: question.IsCorrect(optionIndex)}
	if result.Correct {
		result.Awarded = s.player.RecordCorrect(s.scoring.BasePoints, s.scoring.StreakThreshold, s.scoring.StreakBonus)
	} else {
		s.player.RecordWrong()
	}
	result.TotalScore = s.player.Snapshot().Score
	return result, true
}

// AdvanceQuestion moves to the next question, reporting whether one existed.
func (s *Session) AdvanceQuestion() bool {
	_, ok := s.cursor.Advance()
	return ok
}

// CheckStoryBeat returns the unshown beat for the cursor's current 1-based
// position, if any. The caller displays it and then calls MarkBeatShown;
// a beat fires at most once per session.
func (s *Session) CheckStoryBeat() (domain.StoryBeat, bool) {
	current, _ := s.cursor.Progress()
	return s.story.BeatForQuestion(current)
}

// MarkBeatShown records a displayed beat. Idempotent.
func (s *Session) MarkBeatShown(beat domain.StoryBeat) {
	s.story.MarkShown(beat)
}

// IsFinished reports whether the cursor sits on the last question.
func (s *Session) IsFinished() bool {
	return !s.cursor.HasNext()
}

// Finish transitions to Finished and returns the results record.
func (s *Session) Finish() domain.Results {
	s.state = StateFinished
	return s.Results()
}

// Abort marks the session as quit mid-play. Results remain available but the
// finished flag stays false.
func (s *Session) Abort() {
	if s.state == StateInProgress {
		s.state = StateAborted
	}
}

// Results builds the report for the session as it stands.
func (s *Session) Results() domain.Results {
	return domain.Results{
		Stats:          s.player.Snapshot(),
		TotalQuestions: s.cursor.Count(),
		Finished:       s.state == StateFinished,
		StoryCompleted: s.story.ShownCount() == s.story.TotalBeats(),
	}
}

// Stats returns the player snapshot.
func (s *Session) Stats() domain.PlayerStats {
	return s.player.Snapshot()
}

// Story exposes the story index for read-only presentation queries.
func (s *Session) Story() *StoryIndex {
	return s.story
}

// ShuffleQuestions randomly reorders the question sequence and rewinds the
// cursor. Meant for free-play sessions only: positions stop matching
// story-beat triggers once shuffled.
func (s *Session) ShuffleQuestions() {
	s.cursor.Shuffle()
}

// Reset returns to NotStarted: cursor rewound, counters zeroed (name kept),
// story shown-set cleared.
func (s *Session) Reset() {
	s.cursor.GoToFirst()
	s.player.Reset()
	s.story.ResetShown()
	s.state = StateNotStarted
}
