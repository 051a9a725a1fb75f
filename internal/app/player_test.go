package app_test

import (
	"testing"

	"storyquiz/internal/app"
)

func TestStreakBonusStartsOnFourthAnswer(t *testing.T) {
	player := app.NewPlayer("Alex")

	// Streak before each call is 0,1,2,3: the bonus needs >= 3, so only the
	// fourth answer earns it.
	want := []int{10, 20, 30, 45}
	for i, expected := range want {
		player.RecordCorrect(10, 3, 5)
		if got := player.Snapshot().Score; got != expected {
			t.Fatalf("after %d correct answers: score = %d, want %d", i+1, got, expected)
		}
	}
}

func TestStreakBonusThresholdOne(t *testing.T) {
	player := app.NewPlayer("Alex")

	want := []int{10, 25, 40}
	for i, expected := range want {
		player.RecordCorrect(10, 1, 5)
		if got := player.Snapshot().Score; got != expected {
			t.Fatalf("after %d correct answers: score = %d, want %d", i+1, got, expected)
		}
	}
}

func TestWrongAnswerResetsStreakOnly(t *testing.T) {
	player := app.NewPlayer("Alex")
	player.RecordCorrect(10, 3, 5)
	player.RecordCorrect(10, 3, 5)
	before := player.Snapshot()

	player.RecordWrong()
	stats := player.Snapshot()

	if stats.CurrentStreak != 0 {
		t.Fatalf("current streak = %d, want 0", stats.CurrentStreak)
	}
	if stats.BestStreak != before.BestStreak {
		t.Fatalf("best streak changed: %d -> %d", before.BestStreak, stats.BestStreak)
	}
	if stats.Score != before.Score {
		t.Fatalf("score changed on wrong answer: %d -> %d", before.Score, stats.Score)
	}
	if stats.Wrong != 1 || stats.Total != 3 {
		t.Fatalf("counters = %d wrong / %d total, want 1/3", stats.Wrong, stats.Total)
	}
}

func TestAccuracyZeroWithoutAnswers(t *testing.T) {
	player := app.NewPlayer("Alex")
	if acc := player.Accuracy(); acc != 0.0 {
		t.Fatalf("accuracy on empty player = %f, want 0.0", acc)
	}
}

func TestResetKeepsName(t *testing.T) {
	player := app.NewPlayer("Alex")
	player.RecordCorrect(10, 3, 5)
	player.RecordWrong()

	player.Reset()
	stats := player.Snapshot()

	if stats.Name != "Alex" {
		t.Fatalf("name after reset = %q, want Alex", stats.Name)
	}
	if stats.Score != 0 || stats.Correct != 0 || stats.Wrong != 0 ||
		stats.Total != 0 || stats.CurrentStreak != 0 || stats.BestStreak != 0 {
		t.Fatalf("counters not zeroed: %+v", stats)
	}
}
