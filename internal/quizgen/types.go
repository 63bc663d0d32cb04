package quizgen

// Difficulty labels a question's difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Request describes one quiz session request. Created by the caller,
// immutable, never persisted.
type Request struct {
	// Count is the desired number of questions. Default: 10.
	Count int `json:"count"`

	// Lang is the language tag all generated text should use. Default: "en".
	Lang string `json:"lang"`

	// Topics narrows generation. Empty means general knowledge.
	Topics []string `json:"topics"`
}

// Normalize fills defaults and clamps Count to [1, maxCount].
func (r *Request) Normalize(maxCount int) {
	if r.Count <= 0 {
		r.Count = 10
	}
	if maxCount > 0 && r.Count > maxCount {
		r.Count = maxCount
	}
	if r.Lang == "" {
		r.Lang = "en"
	}
	if r.Topics == nil {
		r.Topics = []string{}
	}
}

// Question is the canonical validated entity. Every Question in a
// returned session satisfies the schema constraints: non-empty id and
// stem, exactly 4 pairwise-distinct options, correct index in [0,3],
// difficulty from the known set. Immutable once constructed.
type Question struct {
	ID           string     `json:"id"`
	Stem         string     `json:"stem"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correct_index"`
	Explanation  string     `json:"explanation"`
	Difficulty   Difficulty `json:"difficulty"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
	Lang         string     `json:"lang"`
}

// Session source tags, reported to operators (log field and response
// header), never to end users as an error.
const (
	SourceFallback = "fallback"
)

// Session is one complete set of quiz questions returned for a single
// request. Nothing about it persists beyond the request/response cycle.
type Session struct {
	Questions []Question `json:"questions"`

	// Source records which path produced the session: a provider
	// surface tag or SourceFallback.
	Source string `json:"-"`
}
