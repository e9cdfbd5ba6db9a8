package routines

import "fmt"

// ReconcilePlan is the diff between the stored exercises of a routine and the
// complete desired list submitted by staff.
type ReconcilePlan struct {
	Create []RoutineExercise
	Update []RoutineExercise
	Delete []string
}

// Reconcile computes the full-replace diff: desired items without an id are
// created (newID supplies one), items whose id exists are overwritten, and
// every stored id missing from desired is deleted. A desired id that is not
// stored, or one given twice, is an error; nothing is planned in that case.
func Reconcile(existing, desired []RoutineExercise, newID func() string) (ReconcilePlan, error) {
	existingIDs := make(map[string]bool, len(existing))
	for _, ex := range existing {
		existingIDs[ex.ID] = true
	}

	plan := ReconcilePlan{}
	kept := make(map[string]bool, len(desired))
	for _, ex := range desired {
		if ex.ID == "" {
			ex.ID = newID()
			plan.Create = append(plan.Create, ex)
			kept[ex.ID] = true
			continue
		}
		if kept[ex.ID] {
			return ReconcilePlan{}, fmt.Errorf("%w: %s", ErrDuplicateID, ex.ID)
		}
		if !existingIDs[ex.ID] {
			return ReconcilePlan{}, fmt.Errorf("%w: %s", ErrUnknownExercise, ex.ID)
		}
		kept[ex.ID] = true
		plan.Update = append(plan.Update, ex)
	}

	for _, ex := range existing {
		if !kept[ex.ID] {
			plan.Delete = append(plan.Delete, ex.ID)
		}
	}

	return plan, nil
}

// Kept returns the exercises the routine holds once the plan is applied.
func (p ReconcilePlan) Kept() []RoutineExercise {
	kept := make([]RoutineExercise, 0, len(p.Create)+len(p.Update))
	kept = append(kept, p.Create...)
	return append(kept, p.Update...)
}
