package quizgen

// fallbackBank is the fixed, hand-authored question set served whenever
// generation fails. Every entry already satisfies the full Question
// contract, so no sanitization pass is needed on this path.
var fallbackBank = []Question{
	{
		ID:           "f1",
		Stem:         "Which planet is known as the Red Planet?",
		Options:      []string{"Mercury", "Mars", "Jupiter", "Venus"},
		CorrectIndex: 1,
		Explanation:  "Iron oxide gives Mars its color.",
		Difficulty:   DifficultyEasy,
	},
	{
		ID:           "f2",
		Stem:         "What is the capital of Japan?",
		Options:      []string{"Seoul", "Tokyo", "Beijing", "Osaka"},
		CorrectIndex: 1,
		Difficulty:   DifficultyEasy,
	},
	{
		ID:           "f3",
		Stem:         "H2O is the chemical formula for what?",
		Options:      []string{"Oxygen", "Hydrogen", "Salt", "Water"},
		CorrectIndex: 3,
		Difficulty:   DifficultyEasy,
	},
	{
		ID:           "f4",
		Stem:         "What is 9 × 7?",
		Options:      []string{"56", "72", "63", "81"},
		CorrectIndex: 2,
		Difficulty:   DifficultyEasy,
	},
	{
		ID:           "f5",
		Stem:         "Which ocean is largest by area?",
		Options:      []string{"Indian", "Pacific", "Atlantic", "Arctic"},
		CorrectIndex: 1,
		Difficulty:   DifficultyMedium,
	},
	{
		ID:           "f6",
		Stem:         "Who wrote '1984'?",
		Options:      []string{"George Orwell", "J.K. Rowling", "Ernest Hemingway", "F. Scott Fitzgerald"},
		CorrectIndex: 0,
		Difficulty:   DifficultyMedium,
	},
	{
		ID:           "f7",
		Stem:         "Smallest prime number?",
		Options:      []string{"0", "1", "2", "3"},
		CorrectIndex: 2,
		Difficulty:   DifficultyMedium,
	},
	{
		ID:           "f8",
		Stem:         "Which gas do plants absorb?",
		Options:      []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Helium"},
		CorrectIndex: 2,
		Difficulty:   DifficultyMedium,
	},
	{
		ID:           "f9",
		Stem:         "Which language in Brazil?",
		Options:      []string{"Spanish", "Portuguese", "French", "English"},
		CorrectIndex: 1,
		Difficulty:   DifficultyHard,
	},
	{
		ID:           "f10",
		Stem:         "Instrument with keys, pedals, strings?",
		Options:      []string{"Guitar", "Piano", "Violin", "Flute"},
		CorrectIndex: 1,
		Difficulty:   DifficultyHard,
	},
}

// FallbackQuestions returns a fresh copy of the 10-question fallback
// bank with defaulted fields filled in.
func FallbackQuestions() []Question {
	out := make([]Question, len(fallbackBank))
	for i, q := range fallbackBank {
		q.Options = append([]string(nil), q.Options...)
		q.Category = "general"
		q.Tags = []string{}
		q.Lang = "en"
		out[i] = q
	}
	return out
}
