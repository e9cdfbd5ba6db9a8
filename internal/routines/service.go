package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

var ErrInvalidRoutine = errors.New("invalid routine")

// WeekOverride is what staff may change per week; unset fields keep the
// template defaults.
type WeekOverride struct {
	Sets *int   `json:"sets,omitempty" validate:"omitempty,min=1,max=20"`
	Reps *int   `json:"reps,omitempty" validate:"omitempty,min=1,max=100"`
	RIR  *int   `json:"rir,omitempty" validate:"omitempty,min=0,max=10"`
	Note string `json:"note,omitempty" validate:"max=500"`
}

type ExerciseInput struct {
	ID         string               `json:"id,omitempty"`
	TemplateID string               `json:"templateId" validate:"required"`
	Day        calendar.Weekday     `json:"day" validate:"oneof=lunes martes miercoles jueves viernes sabado"`
	Order      int                  `json:"order" validate:"min=0"`
	Circuit    string               `json:"circuit,omitempty" validate:"max=100"`
	Weeks      map[int]WeekOverride `json:"weeks,omitempty" validate:"dive"`
}

type CreateRoutineRequest struct {
	CategoryID string                       `json:"categoryId" validate:"required"`
	Name       string                       `json:"name" validate:"required,max=200"`
	StartDate  string                       `json:"startDate" validate:"required,datetime=2006-01-02"`
	Weeks      int                          `json:"weeks" validate:"min=1,max=52"`
	DayTypes   map[calendar.Weekday]DayType `json:"dayTypes,omitempty" validate:"dive,keys,oneof=lunes martes miercoles jueves viernes sabado,endkeys,oneof=match rest training"`
	Exercises  []ExerciseInput              `json:"exercises" validate:"dive"`
}

type RoutineWithExercises struct {
	Routine   Routine           `json:"routine"`
	Exercises []RoutineExercise `json:"exercises"`
}

type routinesRepo interface {
	AddRoutine(ctx context.Context, routine Routine) error
	GetRoutine(ctx context.Context, id string) (*Routine, error)
	ListForCategory(ctx context.Context, categoryID string) ([]Routine, error)
	GetExercises(ctx context.Context, routineID string) ([]RoutineExercise, error)
	ApplyPlan(ctx context.Context, routineID string, plan ReconcilePlan) error
	GetTemplate(ctx context.Context, id string) (*ExerciseTemplate, error)
}

type Service struct {
	repo  routinesRepo
	now   func() time.Time
	newID func() string
}

func NewService(repo routinesRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) CreateRoutine(ctx context.Context, req CreateRoutineRequest) (_ *RoutineWithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pkg.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoutine, err)
	}
	endDate, err := EndDateFor(req.StartDate, req.Weeks)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoutine, err)
	}

	routine := Routine{
		ID:         s.newID(),
		CategoryID: req.CategoryID,
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    endDate,
		Weeks:      req.Weeks,
		DayTypes:   req.DayTypes,
		CreatedAt:  s.now().UTC(),
	}

	// resolve every template before the first write, so a missing one
	// leaves nothing behind
	desired, err := s.buildExercises(ctx, routine, req.Exercises)
	if err != nil {
		return nil, err
	}
	for _, ex := range desired {
		if ex.ID != "" {
			return nil, fmt.Errorf("%w: new routine cannot reference exercise %s", ErrInvalidRoutine, ex.ID)
		}
	}
	plan, err := Reconcile(nil, desired, s.newID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddRoutine(ctx, routine); err != nil {
		return nil, fmt.Errorf("add routine: %w", err)
	}
	if err := s.repo.ApplyPlan(ctx, routine.ID, plan); err != nil {
		return nil, fmt.Errorf("save routine exercises: %w", err)
	}

	log.Debugf("routine [%s] created for category [%s], %d weeks from %s", routine.ID, routine.CategoryID, routine.Weeks, routine.StartDate)

	exercises := plan.Kept()
	SortExercises(exercises)
	return &RoutineWithExercises{
		Routine:   routine,
		Exercises: exercises,
	}, nil
}

// SaveExercises replaces the whole exercise set of a routine with inputs.
// Callers always submit the complete desired state.
func (s *Service) SaveExercises(ctx context.Context, routineID string, inputs []ExerciseInput) (_ []RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.save-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pkg.ValidateStruct(inputs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoutine, err)
	}

	routine, err := s.repo.GetRoutine(ctx, routineID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetExercises(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("get existing exercises: %w", err)
	}

	desired, err := s.buildExercises(ctx, *routine, inputs)
	if err != nil {
		return nil, err
	}

	plan, err := Reconcile(existing, desired, s.newID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyPlan(ctx, routineID, plan); err != nil {
		return nil, fmt.Errorf("apply exercises plan: %w", err)
	}

	log.Debugf("routine [%s] exercises saved: %d created, %d updated, %d deleted",
		routineID, len(plan.Create), len(plan.Update), len(plan.Delete))

	exercises := plan.Kept()
	SortExercises(exercises)
	return exercises, nil
}

// buildExercises turns inputs into full records, filling every week
// 1..routine.Weeks from the template defaults where staff did not override.
func (s *Service) buildExercises(ctx context.Context, routine Routine, inputs []ExerciseInput) ([]RoutineExercise, error) {
	templates := map[string]*ExerciseTemplate{}
	exercises := make([]RoutineExercise, 0, len(inputs))
	for _, in := range inputs {
		tpl, ok := templates[in.TemplateID]
		if !ok {
			var err error
			tpl, err = s.repo.GetTemplate(ctx, in.TemplateID)
			if err != nil {
				return nil, err
			}
			templates[in.TemplateID] = tpl
		}

		for week := range in.Weeks {
			if week < 1 || week > routine.Weeks {
				return nil, fmt.Errorf("%w: week %d outside 1..%d", ErrInvalidRoutine, week, routine.Weeks)
			}
		}

		weeks := make(map[int]WeekConfig, routine.Weeks)
		for week := 1; week <= routine.Weeks; week++ {
			cfg := WeekConfig{
				Sets: tpl.DefaultSets,
				RIR:  tpl.DefaultRIR,
			}
			if o, ok := in.Weeks[week]; ok {
				if o.Sets != nil {
					cfg.Sets = *o.Sets
				}
				if o.Reps != nil {
					reps := *o.Reps
					cfg.Reps = &reps
				}
				if o.RIR != nil {
					cfg.RIR = *o.RIR
				}
				cfg.Note = o.Note
			}
			weeks[week] = cfg
		}

		exercises = append(exercises, RoutineExercise{
			ID:         in.ID,
			RoutineID:  routine.ID,
			TemplateID: in.TemplateID,
			Day:        in.Day,
			Order:      in.Order,
			Circuit:    in.Circuit,
			Weeks:      weeks,
		})
	}
	return exercises, nil
}

func (s *Service) GetRoutine(ctx context.Context, id string) (_ *RoutineWithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine, err := s.repo.GetRoutine(ctx, id)
	if err != nil {
		return nil, err
	}
	exercises, err := s.repo.GetExercises(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	return &RoutineWithExercises{
		Routine:   *routine,
		Exercises: exercises,
	}, nil
}

func (s *Service) ListForCategory(ctx context.Context, categoryID string) ([]Routine, error) {
	return s.repo.ListForCategory(ctx, categoryID)
}

// ActiveForCategory returns the routine of the category running on asOf, or
// nil when there is none.
func (s *Service) ActiveForCategory(ctx context.Context, categoryID, asOf string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.active-for-category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routines, err := s.repo.ListForCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return ActiveRoutine(routines, asOf), nil
}

func (s *Service) Exercises(ctx context.Context, routineID string) ([]RoutineExercise, error) {
	return s.repo.GetExercises(ctx, routineID)
}

func (s *Service) Template(ctx context.Context, id string) (*ExerciseTemplate, error) {
	return s.repo.GetTemplate(ctx, id)
}
