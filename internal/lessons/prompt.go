package lessons

import (
	"fmt"
	"strings"
)

const annotationSystemPrompt = `You are a Spanish teacher preparing a short translation exercise for an English-speaking learner. You analyze an English sentence and its Spanish translation.`

func buildAnnotationUserMessage(english, spanish string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "English: %q\n", english)
	fmt.Fprintf(&b, "Spanish: %q\n", spanish)

	b.WriteString(`
Instructions:
1. List the key vocabulary of the sentence. For each word give the English word, the Spanish word exactly as written in the translation above, and a short note (part of speech, person, formality).
2. Write 2-4 short grammar notes about how the Spanish sentence is built (word order, question marks, verb forms, prepositions).
3. Write 3 similar Spanish example sentences a learner could practice next.
4. Keep every Spanish word spelled with its accents. Do not translate into any other language.`)

	return b.String()
}
