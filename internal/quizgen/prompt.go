package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

const instructionTemplate = `You are a rigorous quiz generator. Output ONLY a valid JSON object (no code fences, no prose).
Schema:
{
  "questions": [
    {
      "id": "string",
      "stem": "string",
      "options": ["string","string","string","string"],
      "correct_index": 0,
      "explanation": "string",
      "difficulty": "easy|medium|hard",
      "category": "string",
      "tags": ["string", "..."],
      "lang": "%s"
    }
  ]
}
Constraints:
- Exactly 4 unique options and one correct_index in [0..3]
- Difficulty distribution must follow the provided plan
- All text must be in language: %s
- Topic(s): %s
- Keep explanations short and safe.`

// BuildInstruction produces the instruction text that fixes the output
// schema. Pure function; identical inputs yield identical output.
func BuildInstruction(lang string, topics []string) string {
	topicList := strings.Join(topics, ", ")
	if topicList == "" {
		topicList = "general knowledge"
	}
	return fmt.Sprintf(instructionTemplate, lang, lang, topicList)
}

// userMessage is the machine-readable payload sent alongside the
// instruction text.
type userMessage struct {
	Instruction    string       `json:"instruction"`
	Topics         []string     `json:"topics"`
	DifficultyPlan []Difficulty `json:"difficulty_plan"`
	Count          int          `json:"count"`
}

// BuildUserMessage encodes topics, the difficulty plan and the count as a
// JSON user message.
func BuildUserMessage(topics []string, plan []Difficulty, count int) (string, error) {
	if topics == nil {
		topics = []string{}
	}
	msg, err := json.Marshal(userMessage{
		Instruction:    "Generate multiple-choice questions",
		Topics:         topics,
		DifficultyPlan: plan,
		Count:          count,
	})
	if err != nil {
		return "", fmt.Errorf("marshal user message: %w", err)
	}
	return string(msg), nil
}
