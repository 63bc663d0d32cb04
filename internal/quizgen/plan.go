package quizgen

import "math"

// BuildPlan maps a requested question count to an ordered difficulty
// plan. Small sessions (count <= 3) are all easy. Larger ones split
// roughly 30% easy / 40% medium / rest hard, with at least one question
// in each bucket. Pure and deterministic.
func BuildPlan(count int) []Difficulty {
	if count <= 0 {
		return []Difficulty{}
	}

	plan := make([]Difficulty, 0, count)

	if count <= 3 {
		for i := 0; i < count; i++ {
			plan = append(plan, DifficultyEasy)
		}
		return plan
	}

	easy := max(1, int(math.Floor(float64(count)*0.3)))
	medium := max(1, int(math.Floor(float64(count)*0.4)))
	hard := max(1, count-easy-medium)

	for i := 0; i < easy; i++ {
		plan = append(plan, DifficultyEasy)
	}
	for i := 0; i < medium; i++ {
		plan = append(plan, DifficultyMedium)
	}
	for i := 0; i < hard; i++ {
		plan = append(plan, DifficultyHard)
	}
	return plan
}
