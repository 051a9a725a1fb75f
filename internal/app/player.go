package app

import "storyquiz/internal/domain"

// Player tracks score, streak and accuracy for one session. All counters
// mutate only through RecordCorrect/RecordWrong.
type Player struct {
	name          string
	score         int
	correct       int
	wrong         int
	currentStreak int
	bestStreak    int
	total         int
}

func NewPlayer(name string) *Player {
	return &Player{name: name}
}

// SetName renames the player; counters are untouched.
func (p *Player) SetName(name string) {
	p.name = name
}

func (p *Player) Name() string {
	return p.name
}

// RecordCorrect applies base points plus the streak bonus when the streak
// *before* this answer already reached the threshold. That ordering is
// deliberate: at threshold 3 the fourth consecutive correct answer is the
// first to earn the bonus. Returns the points awarded.
func (p *Player) RecordCorrect(basePoints, streakThreshold, streakBonus int) int {
	awarded := basePoints
	if streakThreshold > 0 && p.currentStreak >= streakThreshold {
		awarded += streakBonus
	}
	p.score += awarded
	p.correct++
	p.total++
	p.currentStreak++
	if p.currentStreak > p.bestStreak {
		p.bestStreak = p.currentStreak
	}
	return awarded
}

// RecordWrong resets the current streak. Score and best streak are untouched.
func (p *Player) RecordWrong() {
	p.wrong++
	p.total++
	p.currentStreak = 0
}

// Accuracy returns the correct-answer percentage, 0.0 when nothing was answered.
func (p *Player) Accuracy() float64 {
	if p.total == 0 {
		return 0.0
	}
	return float64(p.correct) / float64(p.total) * 100
}

// Snapshot returns an immutable view of the player's counters.
func (p *Player) Snapshot() domain.PlayerStats {
	return domain.PlayerStats{
		Name:          p.name,
		Score:         p.score,
		Correct:       p.correct,
		Wrong:         p.wrong,
		Total:         p.total,
		Accuracy:      p.Accuracy(),
		CurrentStreak: p.currentStreak,
		BestStreak:    p.bestStreak,
	}
}

// Reset zeroes every counter but keeps the name.
func (p *Player) Reset() {
	p.score = 0
	p.correct = 0
	p.wrong = 0
	p.currentStreak = 0
	p.bestStreak = 0
	p.total = 0
}
