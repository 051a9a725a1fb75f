package domain

// Raw record shapes handed over by the content-loading collaborator.
// The content store validates and cross-references them; the loaders only
// guarantee structural decoding.

// QuestionRecord is a single question as it arrives from a data source.
type QuestionRecord struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// IntroCommentRecord carries the host's lead-in for a question, keyed by
// question id in the enclosing map.
type IntroCommentRecord struct {
	Emoji string   `json:"emoji"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
}

// CommentRecord carries the host's reaction to a correct or wrong answer.
type CommentRecord struct {
	Text string `json:"text"`
}

// StoryBeatRecord is a story beat as it arrives from a data source.
type StoryBeatRecord struct {
	TriggerQuestion int    `json:"trigger_question"`
	Speaker         string `json:"speaker"`
	Mood            string `json:"mood"`
	Title           string `json:"title"`
	Text            string `json:"text"`
	Act             int    `json:"act"`
}

// CharacterRecord describes a speaker, keyed by name in the enclosing map.
type CharacterRecord struct {
	Emoji string `json:"emoji"`
}
