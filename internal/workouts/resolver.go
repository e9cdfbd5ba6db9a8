package workouts

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/club"
	"github.com/2beens/clubtrainer/internal/routines"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/internal/weights"
	"github.com/2beens/clubtrainer/internal/wellness"
)

type Status string

const (
	StatusOK         Status = "ok"
	StatusNoCategory Status = "no_category"
	StatusNoRoutine  Status = "no_routine"
)

type WorkoutExercise struct {
	ID          string                `json:"id"`
	TemplateID  string                `json:"templateId"`
	Name        string                `json:"name"`
	Kind        routines.ExerciseKind `json:"kind,omitempty"`
	MuscleGroup string                `json:"muscleGroup,omitempty"`
	SetMode     routines.SetMode      `json:"setMode,omitempty"`
	Tip         string                `json:"tip,omitempty"`
	Circuit     string                `json:"circuit,omitempty"`
	Order       int                   `json:"order"`
	routines.Prescription
	// Planned is the prescription before wellness adaptation, set only when
	// it was changed.
	Planned *routines.Prescription `json:"planned,omitempty"`
}

// DailyWorkout is the resolved plan of one player for one day. Missing
// upstream data is reported through Status, never as an error.
type DailyWorkout struct {
	Status            Status                  `json:"status"`
	Date              string                  `json:"date"`
	Routine           *routines.Routine       `json:"routine"`
	Day               calendar.Weekday        `json:"day,omitempty"`
	DayType           routines.DayType        `json:"dayType,omitempty"`
	WeekNumber        int                     `json:"weekNumber,omitempty"`
	Exercises         []WorkoutExercise       `json:"exercises"`
	Circuits          []routines.CircuitGroup `json:"circuits"`
	WellnessScore     *int                    `json:"wellnessScore"`
	WasAdapted        bool                    `json:"wasAdapted"`
	WeightSuggestions map[string]float64      `json:"weightSuggestions"`
}

func newDailyWorkout(status Status, date string) *DailyWorkout {
	return &DailyWorkout{
		Status:            status,
		Date:              date,
		Exercises:         []WorkoutExercise{},
		Circuits:          []routines.CircuitGroup{},
		WeightSuggestions: map[string]float64{},
	}
}

type playerSource interface {
	GetPlayer(ctx context.Context, id string) (*club.Player, error)
}

type routineSource interface {
	ActiveForCategory(ctx context.Context, categoryID, asOf string) (*routines.Routine, error)
	Exercises(ctx context.Context, routineID string) ([]routines.RoutineExercise, error)
	Template(ctx context.Context, id string) (*routines.ExerciseTemplate, error)
}

type wellnessSource interface {
	SessionFor(ctx context.Context, playerID, date string) (*wellness.Session, error)
	Rules(ctx context.Context) ([]wellness.Rule, error)
}

type loadSource interface {
	LatestForExercise(ctx context.Context, playerID, exerciseID string) (*LoadRecord, error)
}

type Resolver struct {
	players        playerSource
	routines       routineSource
	wellness       wellnessSource
	loads          loadSource
	calendar       *calendar.Calendar
	metricsManager *metrics.Manager
}

func NewResolver(
	players playerSource,
	routines routineSource,
	wellness wellnessSource,
	loads loadSource,
	cal *calendar.Calendar,
	metricsManager *metrics.Manager,
) *Resolver {
	return &Resolver{
		players:        players,
		routines:       routines,
		wellness:       wellness,
		loads:          loads,
		calendar:       cal,
		metricsManager: metricsManager,
	}
}

// Resolve builds today's workout of the player for requestedDay. An invalid
// or empty requestedDay means today's weekday, with Sunday shown as Saturday.
func (r *Resolver) Resolve(ctx context.Context, playerID, requestedDay string) (_ *DailyWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.workouts.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("player.id", playerID),
		attribute.String("requested.day", requestedDay),
	)

	workout, err := r.resolve(ctx, playerID, requestedDay)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("workout.status", string(workout.Status)))
	if r.metricsManager != nil {
		r.metricsManager.CounterWorkoutsResolved.WithLabelValues(string(workout.Status)).Inc()
		if workout.WasAdapted {
			r.metricsManager.CounterWellnessAdaptations.Inc()
		}
	}
	return workout, nil
}

func (r *Resolver) resolve(ctx context.Context, playerID, requestedDay string) (*DailyWorkout, error) {
	today := r.calendar.Today()

	player, err := r.players.GetPlayer(ctx, playerID)
	if errors.Is(err, club.ErrPlayerNotFound) {
		log.Debugf("workout: player [%s] not found", playerID)
		return newDailyWorkout(StatusNoCategory, today), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if player.CategoryID == "" {
		return newDailyWorkout(StatusNoCategory, today), nil
	}

	routine, err := r.routines.ActiveForCategory(ctx, player.CategoryID, today)
	if err != nil {
		return nil, fmt.Errorf("get active routine: %w", err)
	}
	if routine == nil {
		return newDailyWorkout(StatusNoRoutine, today), nil
	}

	day, ok := calendar.ParseWeekday(requestedDay)
	if !ok {
		day = r.calendar.TrainingDayToday()
	}

	allExercises, err := r.routines.Exercises(ctx, routine.ID)
	if err != nil {
		return nil, fmt.Errorf("get routine exercises: %w", err)
	}
	dayExercises := routines.ExercisesForDay(allExercises, day)

	workout := newDailyWorkout(StatusOK, today)
	workout.Routine = routine
	workout.Day = day
	workout.DayType = routines.ResolveDayType(routine, day, len(dayExercises) > 0)
	workout.WeekNumber = routines.CurrentWeekNumber(routine.StartDate, today)

	templates := map[string]*routines.ExerciseTemplate{}
	planned := make([]routines.Prescription, 0, len(dayExercises))
	for _, ex := range dayExercises {
		tpl, ok := templates[ex.TemplateID]
		if !ok {
			tpl, err = r.routines.Template(ctx, ex.TemplateID)
			if err != nil {
				return nil, fmt.Errorf("routine exercise [%s]: %w", ex.ID, err)
			}
			templates[ex.TemplateID] = tpl
		}
		planned = append(planned, routines.EffectiveExerciseForWeek(ex, *tpl, workout.WeekNumber))
	}

	prescriptions := planned
	session, err := r.wellness.SessionFor(ctx, playerID, today)
	if err != nil {
		return nil, fmt.Errorf("get wellness session: %w", err)
	}
	if session != nil {
		score := session.NormalizedScore()
		workout.WellnessScore = &score
		if session.HasAnswers() {
			rules, err := r.wellness.Rules(ctx)
			if err != nil {
				return nil, err
			}
			var adaptation wellness.Adaptation
			prescriptions, adaptation = wellness.ApplyRules(planned, rules, score)
			workout.WasAdapted = adaptation.Matched
		}
	}

	for i, ex := range dayExercises {
		tpl := templates[ex.TemplateID]
		we := WorkoutExercise{
			ID:           ex.ID,
			TemplateID:   ex.TemplateID,
			Name:         tpl.Name,
			Kind:         tpl.Kind,
			MuscleGroup:  tpl.MuscleGroup,
			SetMode:      tpl.SetMode,
			Tip:          tpl.Tip,
			Circuit:      ex.Circuit,
			Order:        ex.Order,
			Prescription: prescriptions[i],
		}
		if prescriptions[i] != planned[i] {
			p := planned[i]
			we.Planned = &p
		}
		workout.Exercises = append(workout.Exercises, we)

		// load history follows the catalog exercise across routines
		last, err := r.loads.LatestForExercise(ctx, playerID, ex.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("get last load of [%s]: %w", ex.TemplateID, err)
		}
		if last == nil {
			continue
		}
		// suggest for the planned reps: adaptation cuts volume, not load
		if suggestion := weights.SuggestWeightFromLastRecord(last.Weight, last.Reps, planned[i].Reps); suggestion != nil {
			workout.WeightSuggestions[ex.ID] = *suggestion
		}
	}

	if groups := routines.GroupCircuits(dayExercises); groups != nil {
		workout.Circuits = groups
	}
	return workout, nil
}
