// Package ui renders the game in the terminal and collects player input.
// It only reads core state through the session's accessors and mutates it
// through the session's entry points.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storyquiz/internal/app"
	"storyquiz/internal/domain"
)

var actNames = map[int]string{
	1: "PART I — Awakening",
	2: "PART II — Revelation",
	3: "PART III — Truth",
	4: "PART IV — Resolution",
}

// Console drives the interactive game loop on a terminal.
type Console struct {
	session *app.Session
	title   string
	in      *bufio.Scanner
	out     io.Writer

	moodStyles map[domain.Mood]lipgloss.Style
	titleStyle lipgloss.Style
	goodStyle  lipgloss.Style
	badStyle   lipgloss.Style
	dimStyle   lipgloss.Style

	announcedActs map[int]struct{}
}

func NewConsole(session *app.Session, title string, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: session,
		title:   title,
		in:      bufio.NewScanner(in),
		out:     out,
		moodStyles: map[domain.Mood]lipgloss.Style{
			domain.MoodNormal:     lipgloss.NewStyle(),
			domain.MoodDramatic:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			domain.MoodCalm:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			domain.MoodMysterious: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			domain.MoodEmotional:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		},
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		goodStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		badStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dimStyle:      lipgloss.NewStyle().Faint(true),
		announcedActs: make(map[int]struct{}),
	}
}

// Welcome prints the banner and lets the player pick a name. Empty input
// keeps the default.
func (c *Console) Welcome(defaultName string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.titleStyle.Render("  ╔══════════════════════════════╗"))
	fmt.Fprintf(c.out, "%s\n", c.titleStyle.Render("  ║  "+padCenter(c.title, 26)+"  ║"))
	fmt.Fprintln(c.out, c.titleStyle.Render("  ╚══════════════════════════════╝"))
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Enter your name (Enter — %s):\n", defaultName)
	if name := strings.TrimSpace(c.readLine("> ")); name != "" {
		c.session.SetPlayerName(name)
	}
}

// Run executes the full turn sequence until the quiz ends or the player quits.
func (c *Console) Run() {
	c.session.Start()

	for {
		question, ok := c.session.CurrentQuestion()
		if !ok {
			break
		}

		if beat, ok := c.session.CheckStoryBeat(); ok {
			c.printStoryBeat(beat)
			c.session.MarkBeatShown(beat)
			c.waitEnter("Press Enter to continue...")
		}

		current, total := c.session.Progress()
		c.printQuestion(question, current, total)

		answer, quit := c.readAnswer(question)
		if quit {
			c.session.Abort()
			c.printResults(c.session.Results())
			return
		}

		result, ok := c.session.SubmitAnswer(answer)
		if !ok {
			break
		}
		c.printAnswerResult(result, question)
		c.printStats()

		if c.session.IsFinished() {
			results := c.session.Finish()
			c.printResults(results)
			if beat, ok := c.session.CheckStoryBeat(); ok {
				c.waitEnter("Press Enter for the finale...")
				c.printStoryBeat(beat)
				c.session.MarkBeatShown(beat)
			}
			return
		}

		if !c.askContinue() {
			c.session.Abort()
			c.printResults(c.session.Results())
			return
		}
		c.session.AdvanceQuestion()
	}
}

func (c *Console) printStoryBeat(beat domain.StoryBeat) {
	if _, seen := c.announcedActs[beat.Act]; !seen {
		c.announcedActs[beat.Act] = struct{}{}
		fmt.Fprintln(c.out)
		c.separator("═")
		fmt.Fprintf(c.out, "  %s\n", c.titleStyle.Render(actNames[beat.Act]))
		c.separator("═")
	}

	style := c.moodStyles[beat.Mood]
	fmt.Fprintln(c.out)
	c.separator("═")
	fmt.Fprintf(c.out, "  %s\n", style.Render("📖 "+beat.Title))
	c.separator("═")

	speaker := beat.Speaker
	if character, ok := c.session.Story().CharacterByName(beat.Speaker); ok && character.Emoji != "" {
		speaker = character.Emoji + " " + speaker
	}
	fmt.Fprintf(c.out, "\n  %s:\n\n", speaker)
	for _, line := range strings.Split(beat.Text, "\n") {
		fmt.Fprintf(c.out, "    %s\n", style.Render(line))
	}
	fmt.Fprintln(c.out)
	c.separator("═")
}

func (c *Console) printQuestion(q domain.Question, number, total int) {
	fmt.Fprintf(c.out, "\n📍 Question %d/%d\n", number, total)
	if q.IntroComment != "" {
		emoji := ""
		if q.Emoji != "" {
			emoji = q.Emoji + " "
		}
		fmt.Fprintf(c.out, "\n🎤 %s%s\n", emoji, q.IntroComment)
	}
	fmt.Fprintf(c.out, "\n❓ %s\n\n", q.Prompt)
	for i, option := range q.Options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, option)
	}
}

func (c *Console) printAnswerResult(result domain.AnswerResult, q domain.Question) {
	if result.Correct {
		fmt.Fprintf(c.out, "\n%s", c.goodStyle.Render("✅ Correct!"))
		fmt.Fprintf(c.out, " +%d points\n", result.Awarded)
		if q.CorrectComment != "" {
			fmt.Fprintf(c.out, "💬 %s\n", q.CorrectComment)
		}
	} else {
		fmt.Fprintf(c.out, "\n%s\n", c.badStyle.Render("❌ Wrong!"))
		fmt.Fprintf(c.out, "The right answer: %s\n", q.CorrectAnswerText())
		if q.WrongComment != "" {
			fmt.Fprintf(c.out, "💬 %s\n", q.WrongComment)
		}
	}
}

func (c *Console) printStats() {
	stats := c.session.Stats()
	fmt.Fprintf(c.out, "\n📊 %s — score %d, %d✓ %d✗, accuracy %.1f%%, streak %d (best %d)\n",
		stats.Name, stats.Score, stats.Correct, stats.Wrong, stats.Accuracy, stats.CurrentStreak, stats.BestStreak)
}

func (c *Console) printResults(results domain.Results) {
	stats := results.Stats
	fmt.Fprintln(c.out)
	c.separator("─")
	fmt.Fprintln(c.out, "  🏆 FINAL RESULTS 🏆")
	c.separator("─")
	fmt.Fprintf(c.out, "\n👤 Player: %s\n", stats.Name)
	fmt.Fprintf(c.out, "📈 Score: %d\n", stats.Score)
	fmt.Fprintf(c.out, "✅ Correct: %d of %d\n", stats.Correct, results.TotalQuestions)
	fmt.Fprintf(c.out, "🎯 Accuracy: %.1f%%\n", stats.Accuracy)
	fmt.Fprintf(c.out, "🔥 Best streak: %d\n", stats.BestStreak)

	story := c.session.Story()
	if story.TotalBeats() > 0 {
		fmt.Fprintf(c.out, "📖 Story beats: %d of %d\n", story.ShownCount(), story.TotalBeats())
		fmt.Fprintln(c.out, "\n📚 Story progress:")
		actProgress := story.ProgressByAct()
		for act := 1; act <= 4; act++ {
			beats := story.BeatsByAct(act)
			if len(beats) == 0 {
				continue
			}
			fmt.Fprintf(c.out, "  Act %d: %d/%d\n", act, actProgress[act], len(beats))
		}
	}

	switch {
	case stats.Accuracy >= 90:
		fmt.Fprintln(c.out, "\n🏅 Legendary! The host would be proud of you.")
	case stats.Accuracy >= 75:
		fmt.Fprintln(c.out, "\n🥇 Excellent! You remembered almost everything.")
	case stats.Accuracy >= 50:
		fmt.Fprintln(c.out, "\n🥈 Good run. Room to grow, though.")
	default:
		fmt.Fprintln(c.out, "\n🥉 The memory will wake up eventually. Try again.")
	}
}

// readAnswer keeps prompting until the player enters a valid option number
// or a quit keyword; the core never sees invalid input.
func (c *Console) readAnswer(q domain.Question) (int, bool) {
	for {
		input := strings.ToLower(strings.TrimSpace(c.readLine(fmt.Sprintf("\nYour answer (1-%d) > ", len(q.Options)))))
		switch input {
		case "q", "quit", "exit":
			return 0, true
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(c.out, "⚠️  Enter a number, please")
			continue
		}
		if n < 1 || n > len(q.Options) {
			fmt.Fprintf(c.out, "⚠️  Enter a number between 1 and %d\n", len(q.Options))
			continue
		}
		return n - 1, false
	}
}

func (c *Console) askContinue() bool {
	answer := strings.ToLower(strings.TrimSpace(c.readLine("\nContinue? (Enter — yes, n — no) > ")))
	return answer != "n" && answer != "no"
}

func (c *Console) waitEnter(prompt string) {
	c.readLine("\n" + c.dimStyle.Render(prompt) + " ")
}

func (c *Console) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		// EOF counts as a quit signal.
		return "q"
	}
	return c.in.Text()
}

func (c *Console) separator(char string) {
	fmt.Fprintln(c.out, c.dimStyle.Render(strings.Repeat(char, 50)))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
