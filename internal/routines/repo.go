package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
)

const templateKeyPrefix = "template:"

func routineKey(id string) string                  { return "routine:" + id }
func categoryRoutinesKey(categoryID string) string { return "category:" + categoryID + ":routines" }
func routineExerciseIndexKey(id string) string     { return "routine:" + id + ":exercises" }
func routineExerciseKey(id string) string          { return "routine-exercise:" + id }
func templateKey(id string) string                 { return templateKeyPrefix + id }

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) AddRoutine(ctx context.Context, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	if err := store.SetJSON(ctx, r.store, routineKey(routine.ID), routine); err != nil {
		return fmt.Errorf("set routine: %w", err)
	}
	if err := r.store.ListPush(ctx, categoryRoutinesKey(routine.CategoryID), routine.ID); err != nil {
		return fmt.Errorf("push routine to category list: %w", err)
	}
	return nil
}

func (r *Repo) GetRoutine(ctx context.Context, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	routine, err := store.GetJSON[Routine](ctx, r.store, routineKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRoutineNotFound, id)
	}
	return routine, err
}

// ListForCategory returns the routines of a category in insertion order.
// Ids left in the category list without a routine record are skipped.
func (r *Repo) ListForCategory(ctx context.Context, categoryID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list-for-category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category.id", categoryID))

	ids, err := r.store.ListRange(ctx, categoryRoutinesKey(categoryID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("list category routines: %w", err)
	}

	routines := make([]Routine, 0, len(ids))
	for _, id := range ids {
		routine, err := r.GetRoutine(ctx, id)
		if errors.Is(err, ErrRoutineNotFound) {
			log.Warnf("category [%s] lists missing routine [%s]", categoryID, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		routines = append(routines, *routine)
	}
	return routines, nil
}

func (r *Repo) exerciseIDs(ctx context.Context, routineID string) ([]string, error) {
	raw, err := r.store.Get(ctx, routineExerciseIndexKey(routineID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode exercise index of routine [%s]: %w", routineID, err)
	}
	return ids, nil
}

// GetExercises returns all exercises of a routine ordered by day and position.
func (r *Repo) GetExercises(ctx context.Context, routineID string) (_ []RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))

	ids, err := r.exerciseIDs(ctx, routineID)
	if err != nil {
		return nil, err
	}

	exercises := make([]RoutineExercise, 0, len(ids))
	for _, id := range ids {
		ex, err := store.GetJSON[RoutineExercise](ctx, r.store, routineExerciseKey(id))
		if errors.Is(err, store.ErrNotFound) {
			log.Warnf("routine [%s] indexes missing exercise [%s]", routineID, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	SortExercises(exercises)
	return exercises, nil
}

// ApplyPlan writes a reconcile plan: removed exercises are deleted, created
// and updated ones are written in full, then the routine index is replaced.
func (r *Repo) ApplyPlan(ctx context.Context, routineID string, plan ReconcilePlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.apply-plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("routine.id", routineID),
		attribute.Int("plan.create", len(plan.Create)),
		attribute.Int("plan.update", len(plan.Update)),
		attribute.Int("plan.delete", len(plan.Delete)),
	)

	if len(plan.Delete) > 0 {
		keys := make([]string, len(plan.Delete))
		for i, id := range plan.Delete {
			keys[i] = routineExerciseKey(id)
		}
		if err := r.store.Delete(ctx, keys...); err != nil {
			return fmt.Errorf("delete removed exercises: %w", err)
		}
	}

	kept := plan.Kept()
	ids := make([]string, 0, len(kept))
	for _, ex := range kept {
		if err := store.SetJSON(ctx, r.store, routineExerciseKey(ex.ID), ex); err != nil {
			return fmt.Errorf("set exercise: %w", err)
		}
		ids = append(ids, ex.ID)
	}

	if err := store.SetJSON(ctx, r.store, routineExerciseIndexKey(routineID), ids); err != nil {
		return fmt.Errorf("set exercise index: %w", err)
	}
	return nil
}

func (r *Repo) GetTemplate(ctx context.Context, id string) (*ExerciseTemplate, error) {
	tpl, err := store.GetJSON[ExerciseTemplate](ctx, r.store, templateKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return tpl, err
}

func (r *Repo) PutTemplate(ctx context.Context, tpl ExerciseTemplate) error {
	return store.SetJSON(ctx, r.store, templateKey(tpl.ID), tpl)
}

func (r *Repo) ListTemplates(ctx context.Context) (_ []ExerciseTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list-templates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	keys, err := r.store.KeysMatching(ctx, templateKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	templates := make([]ExerciseTemplate, 0, len(keys))
	for _, key := range keys {
		tpl, err := r.GetTemplate(ctx, strings.TrimPrefix(key, templateKeyPrefix))
		if err != nil {
			return nil, err
		}
		templates = append(templates, *tpl)
	}
	return templates, nil
}
