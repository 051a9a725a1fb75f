// Package memory provides built-in sample content so the game can run
// without any data files; swap in the file loader for the real show.
package memory

import "storyquiz/internal/domain"

// SampleQuestions returns a small built-in question set.
func SampleQuestions() []domain.QuestionRecord {
	return []domain.QuestionRecord{
		{ID: 1, Question: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Mercury"}, Correct: 1},
		{ID: 2, Question: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, Correct: 2},
		{ID: 3, Question: "How many continents are there?", Options: []string{"Five", "Six", "Seven", "Eight"}, Correct: 2},
		{ID: 4, Question: "Which element has the chemical symbol O?", Options: []string{"Gold", "Oxygen", "Osmium", "Silver"}, Correct: 1},
		{ID: 5, Question: "What is the capital of Japan?", Options: []string{"Kyoto", "Osaka", "Tokyo", "Nagoya"}, Correct: 2},
		{ID: 6, Question: "How many legs does a spider have?", Options: []string{"Six", "Eight", "Ten", "Twelve"}, Correct: 1},
		{ID: 7, Question: "What gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, Correct: 2},
		{ID: 8, Question: "Which instrument has 88 keys?", Options: []string{"Organ", "Piano", "Accordion", "Harpsichord"}, Correct: 1},
	}
}

// SampleIntroComments returns host lead-ins for part of the sample set;
// the gaps are deliberate, the merge must tolerate them.
func SampleIntroComments() map[int]domain.IntroCommentRecord {
	return map[int]domain.IntroCommentRecord{
		1: {Emoji: "🔭", Text: "Let's warm up with the night sky.", Tags: []string{"space"}},
		2: {Emoji: "🌊", Text: "Time to get your feet wet.", Tags: []string{"geography"}},
		5: {Emoji: "🗾", Text: "A quick trip east.", Tags: []string{"geography"}},
		8: {Emoji: "🎹", Text: "Last one. Listen closely.", Tags: []string{"music"}},
	}
}

// SampleCorrectComments returns reactions for correct answers.
func SampleCorrectComments() map[int]domain.CommentRecord {
	return map[int]domain.CommentRecord{
		1: {Text: "Of course you knew that one."},
		2: {Text: "Vast. Like your memory, apparently."},
		5: {Text: "You've been there, haven't you?"},
	}
}

// SampleWrongComments returns reactions for wrong answers.
func SampleWrongComments() map[int]domain.CommentRecord {
	return map[int]domain.CommentRecord{
		1: {Text: "The red one. It's always the red one."},
		2: {Text: "Think bigger. Much bigger."},
		5: {Text: "Wrong island, friend."},
	}
}

// SampleStoryBeats returns a four-act miniature of the show's story.
func SampleStoryBeats() []domain.StoryBeatRecord {
	return []domain.StoryBeatRecord{
		{TriggerQuestion: 1, Speaker: "Ivan", Mood: "mysterious", Title: "The Invitation", Act: 1,
			Text: "Ah. Awake at last.\nWelcome to the show. You're the next contestant."},
		{TriggerQuestion: 3, Speaker: "Ivan", Mood: "calm", Title: "House Rules", Act: 2,
			Text: "Answer well and the lights stay on.\nAnswer poorly and... well. Let's not."},
		{TriggerQuestion: 5, Speaker: "Ivan", Mood: "dramatic", Title: "The Crack", Act: 3,
			Text: "You're starting to remember, aren't you?\nGood. That's the point of all this."},
		{TriggerQuestion: 8, Speaker: "Ivan", Mood: "emotional", Title: "Curtain", Act: 4,
			Text: "One last question.\nAfter this, you can go home. If you still want to."},
	}
}

// SampleCharacters returns the speakers of the sample story.
func SampleCharacters() map[string]domain.CharacterRecord {
	return map[string]domain.CharacterRecord{
		"Ivan": {Emoji: "🎤"},
	}
}
