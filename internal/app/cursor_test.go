package app_test

import (
	"testing"

	"storyquiz/internal/app"
	"storyquiz/internal/domain"
)

func testQuestions(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = domain.Question{
			ID:      i + 1,
			Prompt:  "question",
			Options: []string{"a", "b"},
			Correct: 0,
		}
	}
	return qs
}

func TestAdvanceStopsAtLastQuestion(t *testing.T) {
	cursor := app.NewQuizCursor(testQuestions(2))

	if _, ok := cursor.Advance(); !ok {
		t.Fatal("expected advance to second question to succeed")
	}
	if cursor.HasNext() {
		t.Fatal("expected no next question at the end")
	}
	if _, ok := cursor.Advance(); ok {
		t.Fatal("advance at last question must fail")
	}
	if current, total := cursor.Progress(); current != 2 || total != 2 {
		t.Fatalf("progress = %d/%d, want 2/2", current, total)
	}
}

func TestGoToRejectsOutOfRange(t *testing.T) {
	cursor := app.NewQuizCursor(testQuestions(3))

	if cursor.GoTo(3) || cursor.GoTo(-1) {
		t.Fatal("out-of-range GoTo must report failure")
	}
	if current, _ := cursor.Progress(); current != 1 {
		t.Fatalf("failed GoTo moved the cursor to %d", current)
	}
	if !cursor.GoTo(2) {
		t.Fatal("in-range GoTo must succeed")
	}
}

func TestBoundaryChecks(t *testing.T) {
	cursor := app.NewQuizCursor(testQuestions(3))

	if cursor.HasPrevious() {
		t.Fatal("first question must have no previous")
	}
	cursor.GoToLast()
	if cursor.HasNext() {
		t.Fatal("last question must have no next")
	}
	if !cursor.HasPrevious() {
		t.Fatal("last question must have a previous")
	}
}

func TestProgressPercent(t *testing.T) {
	cursor := app.NewQuizCursor(testQuestions(4))
	if pct := cursor.ProgressPercent(); pct != 25.0 {
		t.Fatalf("progress percent at first question = %f, want 25.0", pct)
	}
	cursor.GoToLast()
	if pct := cursor.ProgressPercent(); pct != 100.0 {
		t.Fatalf("progress percent at last question = %f, want 100.0", pct)
	}

	empty := app.NewQuizCursor(nil)
	if pct := empty.ProgressPercent(); pct != 0.0 {
		t.Fatalf("progress percent on empty cursor = %f, want 0.0", pct)
	}
}

func TestShuffleKeepsQuestionsAndRewinds(t *testing.T) {
	cursor := app.NewQuizCursor(testQuestions(10))
	cursor.GoToLast()

	cursor.Shuffle()

	if current, _ := cursor.Progress(); current != 1 {
		t.Fatalf("shuffle must rewind to the first question, got %d", current)
	}
	seen := make(map[int]bool)
	for i := 0; i < cursor.Count(); i++ {
		q, ok := cursor.QuestionAt(i)
		if !ok {
			t.Fatalf("question at %d missing after shuffle", i)
		}
		seen[q.ID] = true
	}
	if len(seen) != 10 {
		t.Fatalf("shuffle lost questions: %d unique ids, want 10", len(seen))
	}
}

func TestEmptyCursorIsGuarded(t *testing.T) {
	cursor := app.NewQuizCursor(nil)

	if _, ok := cursor.Current(); ok {
		t.Fatal("empty cursor must have no current question")
	}
	if _, ok := cursor.Advance(); ok {
		t.Fatal("empty cursor must not advance")
	}
	cursor.GoToFirst()
	cursor.GoToLast()
	if current, total := cursor.Progress(); current != 1 || total != 0 {
		t.Fatalf("progress on empty cursor = %d/%d", current, total)
	}
}
