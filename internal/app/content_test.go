package app_test

import (
	"errors"
	"testing"

	"storyquiz/internal/app"
	"storyquiz/internal/domain"
)

func TestLoadContentMergesComments(t *testing.T) {
	store, err := app.LoadContent(
		[]domain.QuestionRecord{
			{ID: 1, Question: "first?", Options: []string{"a", "b"}, Correct: 0},
			{ID: 2, Question: "second?", Options: []string{"a", "b", "c"}, Correct: 2},
		},
		map[int]domain.IntroCommentRecord{
			1: {Emoji: "🎬", Text: "here we go", Tags: []string{"warmup"}},
			9: {Emoji: "👻", Text: "no such question"},
		},
		map[int]domain.CommentRecord{1: {Text: "well done"}},
		map[int]domain.CommentRecord{2: {Text: "not quite"}},
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("count = %d, want 2", store.Count())
	}

	first, ok := store.QuestionAt(0)
	if !ok {
		t.Fatal("first question missing")
	}
	if first.IntroComment != "here we go" || first.Emoji != "🎬" || first.CorrectComment != "well done" {
		t.Fatalf("merge incomplete: %+v", first)
	}
	if len(first.Tags) != 1 || first.Tags[0] != "warmup" {
		t.Fatalf("tags not merged: %v", first.Tags)
	}
	if first.WrongComment != "" {
		t.Fatalf("unexpected wrong comment %q", first.WrongComment)
	}

	second, _ := store.QuestionAt(1)
	if second.IntroComment != "" || second.Emoji != "" {
		t.Fatalf("question without intro record must stay blank: %+v", second)
	}
	if second.WrongComment != "not quite" {
		t.Fatalf("wrong comment = %q, want 'not quite'", second.WrongComment)
	}
}

func TestLoadContentRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name   string
		record domain.QuestionRecord
	}{
		{"missing options", domain.QuestionRecord{ID: 1, Question: "q?", Correct: 0}},
		{"single option", domain.QuestionRecord{ID: 1, Question: "q?", Options: []string{"a"}, Correct: 0}},
		{"correct too big", domain.QuestionRecord{ID: 1, Question: "q?", Options: []string{"a", "b"}, Correct: 2}},
		{"correct negative", domain.QuestionRecord{ID: 1, Question: "q?", Options: []string{"a", "b"}, Correct: -1}},
		{"empty prompt", domain.QuestionRecord{ID: 1, Options: []string{"a", "b"}, Correct: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			good := domain.QuestionRecord{ID: 2, Question: "ok?", Options: []string{"a", "b"}, Correct: 1}
			store, err := app.LoadContent([]domain.QuestionRecord{good, tc.record}, nil, nil, nil)
			if !errors.Is(err, domain.ErrMalformedContent) {
				t.Fatalf("err = %v, want ErrMalformedContent", err)
			}
			if store != nil {
				t.Fatal("failed load must not keep partial state")
			}
		})
	}
}

func TestQuestionAtOutOfRange(t *testing.T) {
	store, err := app.LoadContent(
		[]domain.QuestionRecord{{ID: 1, Question: "q?", Options: []string{"a", "b"}, Correct: 0}},
		nil, nil, nil,
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := store.QuestionAt(1); ok {
		t.Fatal("expected no question past the end")
	}
	if _, ok := store.QuestionAt(-1); ok {
		t.Fatal("expected no question at negative index")
	}
}
