package lessons

// sampleLessons is the built-in lesson set, in display order.
var sampleLessons = []Lesson{
	{
		ID:            "basic-greeting",
		English:       "How are you today?",
		CorrectAnswer: "¿Cómo estás hoy?",
		Vocabulary: []VocabEntry{
			{English: "how", Spanish: "cómo", Notes: "question word"},
			{English: "are", Spanish: "estás", Notes: "you are (informal)"},
			{English: "today", Spanish: "hoy", Notes: "adverb of time"},
		},
		StructureClues: []string{
			"Spanish questions often start with ¿",
			"Use informal 'tú' form for friends",
			"Time expressions usually go at the end",
		},
		Examples: []string{
			"¿Cómo estás tú?",
			"¿Cómo te va?",
			"¿Qué tal estás?",
		},
	},
	{
		ID:            "food-question",
		English:       "What do you want to eat for lunch?",
		CorrectAnswer: "¿Qué quieres comer para el almuerzo?",
		Vocabulary: []VocabEntry{
			{English: "what", Spanish: "qué", Notes: "question word"},
			{English: "want", Spanish: "quieres", Notes: "you want (informal)"},
			{English: "eat", Spanish: "comer", Notes: "infinitive verb"},
			{English: "for", Spanish: "para", Notes: "preposition"},
			{English: "lunch", Spanish: "almuerzo", Notes: "meal"},
		},
		StructureClues: []string{
			"Qué + verb + subject is common question structure",
			"Para + article + noun for purpose",
			"Infinitive after querer",
		},
		Examples: []string{
			"¿Qué quieres comer?",
			"¿Qué te gustaría comer?",
			"¿Qué hay para comer?",
		},
	},
	{
		ID:            "time-question",
		English:       "When do we leave for the airport?",
		CorrectAnswer: "¿Cuándo salimos para el aeropuerto?",
		Vocabulary: []VocabEntry{
			{English: "when", Spanish: "cuándo", Notes: "question word"},
			{English: "leave", Spanish: "salimos", Notes: "we leave"},
			{English: "for", Spanish: "para", Notes: "preposition"},
			{English: "airport", Spanish: "aeropuerto", Notes: "transportation"},
		},
		StructureClues: []string{
			"Cuándo for time questions",
			"Nosotros form: salimos",
			"Para + el + noun for destination",
		},
		Examples: []string{
			"¿Cuándo salimos?",
			"¿A qué hora salimos?",
			"¿Cuándo es el vuelo?",
		},
	},
}

// Catalog returns copies of the built-in sample lessons in display order.
func Catalog() []*Lesson {
	out := make([]*Lesson, len(sampleLessons))
	for i := range sampleLessons {
		out[i] = clone(&sampleLessons[i])
	}
	return out
}

// CatalogLesson returns a copy of the built-in lesson with the given id.
func CatalogLesson(id string) (*Lesson, bool) {
	for i := range sampleLessons {
		if sampleLessons[i].ID == id {
			return clone(&sampleLessons[i]), true
		}
	}
	return nil, false
}

// clone deep-copies a lesson so callers cannot mutate shared data.
func clone(l *Lesson) *Lesson {
	c := *l
	c.Vocabulary = append([]VocabEntry(nil), l.Vocabulary...)
	c.StructureClues = append([]string(nil), l.StructureClues...)
	c.Examples = append([]string(nil), l.Examples...)
	return &c
}
