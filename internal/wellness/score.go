package wellness

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinAnswer = 1
	MaxAnswer = 5
	MaxScore  = 25
)

var ErrInvalidAnswers = errors.New("invalid wellness answers")

// Answers of the daily questionnaire, in order: sleep, energy, soreness,
// stress, motivation. Each is a 1..5 Likert value.
type Answers [5]int

func (a Answers) Validate() error {
	for i, v := range a {
		if v < MinAnswer || v > MaxAnswer {
			return fmt.Errorf("%w: answer %d is %d, expected %d..%d", ErrInvalidAnswers, i+1, v, MinAnswer, MaxAnswer)
		}
	}
	return nil
}

// ComputeScore maps the answers onto 0..25: round(((sum-5)/20)*25), half up,
// clamped. Out of range answers are not rejected here, only clamped through.
func ComputeScore(a Answers) int {
	sum := 0
	for _, v := range a {
		sum += v
	}
	score := int(math.Round(float64(sum-5) / 20 * MaxScore))
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
