package routines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupCircuits(t *testing.T) {
	exercises := []RoutineExercise{
		{ID: "1", Circuit: "A"},
		{ID: "2", Circuit: "A"},
		{ID: "3"},
		{ID: "4"},
		{ID: "5", Circuit: "B"},
		{ID: "6", Circuit: "A"},
	}

	assert.Equal(t, []CircuitGroup{
		{Name: "A", ExerciseIDs: []string{"1", "2"}},
		{ExerciseIDs: []string{"3"}},
		{ExerciseIDs: []string{"4"}},
		{Name: "B", ExerciseIDs: []string{"5"}},
		{Name: "A", ExerciseIDs: []string{"6"}},
	}, GroupCircuits(exercises))

	assert.Nil(t, GroupCircuits(nil))
}
