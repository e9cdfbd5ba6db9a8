package routines

// CircuitGroup is a run of consecutive exercises sharing a circuit name.
// Exercises outside any circuit form single-element groups with an empty Name.
type CircuitGroup struct {
	Name        string   `json:"name,omitempty"`
	ExerciseIDs []string `json:"exerciseIds"`
}

// GroupCircuits groups the already ordered exercises of a day. Only
// consecutive runs are merged: a circuit name that shows up again later
// starts a new group, so display order is kept.
func GroupCircuits(exercises []RoutineExercise) []CircuitGroup {
	var groups []CircuitGroup
	for _, ex := range exercises {
		last := len(groups) - 1
		if ex.Circuit != "" && last >= 0 && groups[last].Name == ex.Circuit {
			groups[last].ExerciseIDs = append(groups[last].ExerciseIDs, ex.ID)
			continue
		}
		groups = append(groups, CircuitGroup{
			Name:        ex.Circuit,
			ExerciseIDs: []string{ex.ID},
		})
	}
	return groups
}
