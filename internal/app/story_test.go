package app_test

import (
	"testing"

	"storyquiz/internal/app"
	"storyquiz/internal/domain"
)

func testStory() *app.StoryIndex {
	return app.LoadStory(
		[]domain.StoryBeatRecord{
			{TriggerQuestion: 1, Speaker: "Ivan", Mood: "mysterious", Title: "Opening", Act: 1},
			{TriggerQuestion: 5, Speaker: "Ivan", Mood: "dramatic", Title: "Midpoint", Act: 2},
			{TriggerQuestion: 3, Speaker: "Ivan", Mood: "calm", Title: "Aside", Act: 1},
		},
		map[string]domain.CharacterRecord{"Ivan": {Emoji: "🎤"}},
	)
}

func TestBeatFiresAtMostOnce(t *testing.T) {
	story := testStory()

	beat, ok := story.BeatForQuestion(5)
	if !ok || beat.Title != "Midpoint" {
		t.Fatalf("expected Midpoint beat, got %+v ok=%v", beat, ok)
	}

	story.MarkShown(beat)
	if _, ok := story.BeatForQuestion(5); ok {
		t.Fatal("beat must not fire again after MarkShown")
	}

	// Idempotent mark, still exactly one shown.
	story.MarkShown(beat)
	if story.ShownCount() != 1 {
		t.Fatalf("shown count = %d, want 1", story.ShownCount())
	}
}

func TestDuplicateTriggerFirstWins(t *testing.T) {
	story := app.LoadStory(
		[]domain.StoryBeatRecord{
			{TriggerQuestion: 2, Title: "First", Act: 1},
			{TriggerQuestion: 2, Title: "Second", Act: 1},
		},
		nil,
	)
	if story.TotalBeats() != 1 {
		t.Fatalf("total beats = %d, want 1", story.TotalBeats())
	}
	beat, ok := story.BeatForQuestion(2)
	if !ok || beat.Title != "First" {
		t.Fatalf("expected the first beat to win, got %+v", beat)
	}
}

func TestBeatsByActInTriggerOrder(t *testing.T) {
	story := testStory()

	act1 := story.BeatsByAct(1)
	if len(act1) != 2 {
		t.Fatalf("act 1 beats = %d, want 2", len(act1))
	}
	if act1[0].TriggerQuestion != 1 || act1[1].TriggerQuestion != 3 {
		t.Fatalf("act 1 beats out of trigger order: %v, %v", act1[0].TriggerQuestion, act1[1].TriggerQuestion)
	}
	if beats := story.BeatsByAct(4); len(beats) != 0 {
		t.Fatalf("expected no act 4 beats, got %d", len(beats))
	}
}

func TestProgressByAct(t *testing.T) {
	story := testStory()

	beat, _ := story.BeatForQuestion(1)
	story.MarkShown(beat)
	beat, _ = story.BeatForQuestion(5)
	story.MarkShown(beat)

	progress := story.ProgressByAct()
	if progress[1] != 1 || progress[2] != 1 {
		t.Fatalf("progress = %v, want act1:1 act2:1", progress)
	}

	story.ResetShown()
	if story.ShownCount() != 0 {
		t.Fatalf("shown count after reset = %d", story.ShownCount())
	}
	if _, ok := story.BeatForQuestion(1); !ok {
		t.Fatal("beats must fire again after ResetShown")
	}
}

func TestCharacterLookupAndMoodNormalization(t *testing.T) {
	story := app.LoadStory(
		[]domain.StoryBeatRecord{{TriggerQuestion: 1, Mood: "sarcastic", Title: "Odd", Act: 1}},
		map[string]domain.CharacterRecord{"Ivan": {Emoji: "🎤"}},
	)

	if _, ok := story.CharacterByName("Nobody"); ok {
		t.Fatal("unknown character must not resolve")
	}
	character, ok := story.CharacterByName("Ivan")
	if !ok || character.Emoji != "🎤" {
		t.Fatalf("character lookup failed: %+v ok=%v", character, ok)
	}

	beat, _ := story.BeatForQuestion(1)
	if beat.Mood != domain.MoodNormal {
		t.Fatalf("unknown mood normalized to %q, want normal", beat.Mood)
	}
}
