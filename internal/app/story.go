package app

import (
	"sort"

	"storyquiz/internal/domain"
)

// StoryIndex holds the narrative beats keyed by trigger question number and
// tracks which beats have already been shown this session. The shown set is
// the only mutable state; everything else is read-only after load.
type StoryIndex struct {
	beats      map[int]domain.StoryBeat
	triggers   []int // sorted trigger numbers, for deterministic iteration
	characters map[string]domain.Character
	shown      map[int]struct{}
}

// LoadStory indexes story beats and characters. Duplicate trigger question
// numbers resolve first-wins: the beat encountered first keeps the slot and
// later ones are dropped (the file loader warns about them).
func LoadStory(beats []domain.StoryBeatRecord, characters map[string]domain.CharacterRecord) *StoryIndex {
	idx := &StoryIndex{
		beats:      make(map[int]domain.StoryBeat, len(beats)),
		characters: make(map[string]domain.Character, len(characters)),
		shown:      make(map[int]struct{}),
	}
	for _, rec := range beats {
		if _, exists := idx.beats[rec.TriggerQuestion]; exists {
			continue
		}
		idx.beats[rec.TriggerQuestion] = domain.StoryBeat{
			TriggerQuestion: rec.TriggerQuestion,
			Speaker:         rec.Speaker,
			Mood:            domain.Mood(rec.Mood).Normalize(),
			Title:           rec.Title,
			Text:            rec.Text,
			Act:             rec.Act,
		}
		idx.triggers = append(idx.triggers, rec.TriggerQuestion)
	}
	sort.Ints(idx.triggers)
	for name, rec := range characters {
		idx.characters[name] = domain.Character{Name: name, Emoji: rec.Emoji}
	}
	return idx
}

// BeatForQuestion returns the beat triggered by the given 1-based question
// number, unless it has already been shown. Each beat fires at most once per
// session no matter how often the question is revisited.
func (s *StoryIndex) BeatForQuestion(questionNumber int) (domain.StoryBeat, bool) {
	beat, ok := s.beats[questionNumber]
	if !ok {
		return domain.StoryBeat{}, false
	}
	if _, seen := s.shown[questionNumber]; seen {
		return domain.StoryBeat{}, false
	}
	return beat, true
}

// MarkShown records the beat as shown. Idempotent.
func (s *StoryIndex) MarkShown(beat domain.StoryBeat) {
	if _, ok := s.beats[beat.TriggerQuestion]; ok {
		s.shown[beat.TriggerQuestion] = struct{}{}
	}
}

// ResetShown clears the shown set for a fresh session.
func (s *StoryIndex) ResetShown() {
	s.shown = make(map[int]struct{})
}

// CharacterByName looks up a speaker.
func (s *StoryIndex) CharacterByName(name string) (domain.Character, bool) {
	c, ok := s.characters[name]
	return c, ok
}

// BeatsByAct returns all beats of an act in trigger order.
func (s *StoryIndex) BeatsByAct(act int) []domain.StoryBeat {
	var out []domain.StoryBeat
	for _, trigger := range s.triggers {
		if beat := s.beats[trigger]; beat.Act == act {
			out = append(out, beat)
		}
	}
	return out
}

// ProgressByAct reports, per act, how many of its beats have been shown.
func (s *StoryIndex) ProgressByAct() map[int]int {
	progress := make(map[int]int)
	for trigger := range s.shown {
		progress[s.beats[trigger].Act]++
	}
	return progress
}

// TotalBeats returns the number of loaded beats.
func (s *StoryIndex) TotalBeats() int {
	return len(s.beats)
}

// ShownCount returns how many beats have fired this session.
func (s *StoryIndex) ShownCount() int {
	return len(s.shown)
}
