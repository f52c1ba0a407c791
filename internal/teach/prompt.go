package teach

import (
	"fmt"
	"strings"

	"github.com/abhisek/languify/internal/lessons"
)

const critiqueSystemPrompt = `You are a friendly Spanish tutor. A learner wrote a sentence and a machine translated it. You rate the translation and teach the learner the grammar it shows.`

func buildCritiqueUserMessage(text, translation, from, to string, lesson *lessons.Lesson) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source (%s): %q\n", from, text)
	fmt.Fprintf(&b, "Translation (%s): %q\n", to, translation)

	if lesson != nil {
		b.WriteString("\nThe learner is practicing this lesson:\n")
		fmt.Fprintf(&b, "English: %q\n", lesson.English)
		fmt.Fprintf(&b, "Reference answer: %q\n", lesson.CorrectAnswer)
		b.WriteString("Vocabulary:\n")
		for _, v := range lesson.Vocabulary {
			fmt.Fprintf(&b, "- %s = %s\n", v.English, v.Spanish)
		}
	}

	b.WriteString(`
Instructions:
1. Rate the translation from 0 to 100 for accuracy and naturalness. Give 1-3 short reasons.
2. Explain in 1-2 sentences how the translated sentence is built.
3. Give 2-3 focused tips, each with a short title.
4. Write 1-3 drills. Use "fillBlank" for a sentence with ___, "translate" for a short sentence to translate, "reorder" for words to put in order. Each drill has a single correct answer.`)
	if lesson != nil {
		b.WriteString("\n5. Tie the tips and drills to the lesson vocabulary where it fits.")
	}

	return b.String()
}
