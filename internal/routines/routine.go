package routines

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/clubtrainer/internal/calendar"
)

var (
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrTemplateNotFound = errors.New("exercise template not found")
	ErrUnknownExercise  = errors.New("routine exercise does not exist")
	ErrDuplicateID      = errors.New("duplicate routine exercise id")
)

const MaxWeeks = 52

// DayType tells how a weekday of a routine is used:
//   - match
//   - rest
//   - training
type DayType string

const (
	DayTypeMatch    DayType = "match"
	DayTypeRest     DayType = "rest"
	DayTypeTraining DayType = "training"
)

func (dt DayType) IsValid() bool {
	switch dt {
	case DayTypeMatch, DayTypeRest, DayTypeTraining:
		return true
	default:
		return false
	}
}

type ExerciseKind string

const (
	KindPush ExerciseKind = "push"
	KindPull ExerciseKind = "pull"
)

type SetMode string

const (
	SetModeSetRep    SetMode = "set_rep"
	SetModeSetMinute SetMode = "set_minutes"
	SetModeSetPerArm SetMode = "set_per_arm"
)

// Routine is a periodized plan of one category over Weeks weeks.
type Routine struct {
	ID         string                       `json:"id" validate:"required"`
	CategoryID string                       `json:"categoryId" validate:"required"`
	Name       string                       `json:"name" validate:"required"`
	StartDate  string                       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string                       `json:"endDate" validate:"required,datetime=2006-01-02"`
	Weeks      int                          `json:"weeks" validate:"min=1,max=52"`
	DayTypes   map[calendar.Weekday]DayType `json:"dayTypes,omitempty" validate:"dive,keys,oneof=lunes martes miercoles jueves viernes sabado,endkeys,oneof=match rest training"`
	CreatedAt  time.Time                    `json:"createdAt"`
}

// WeekConfig is the prescription of one exercise for one week. Reps may be
// left unset, in which case the template default applies.
type WeekConfig struct {
	Sets int    `json:"sets" validate:"min=1"`
	Reps *int   `json:"reps,omitempty" validate:"omitempty,min=1"`
	RIR  int    `json:"rir" validate:"min=0,max=10"`
	Note string `json:"note,omitempty"`
}

// RoutineExercise places a catalog exercise on one weekday of a routine.
type RoutineExercise struct {
	ID         string             `json:"id" validate:"required"`
	RoutineID  string             `json:"routineId" validate:"required"`
	TemplateID string             `json:"templateId" validate:"required"`
	Day        calendar.Weekday   `json:"day" validate:"oneof=lunes martes miercoles jueves viernes sabado"`
	Order      int                `json:"order" validate:"min=0"`
	Circuit    string             `json:"circuit,omitempty"`
	Weeks      map[int]WeekConfig `json:"weeks" validate:"dive"`
}

// ExerciseTemplate is a catalog exercise, independent of any routine.
type ExerciseTemplate struct {
	ID          string       `json:"id" validate:"required" toml:"id"`
	Name        string       `json:"name" validate:"required" toml:"name"`
	DefaultSets int          `json:"defaultSets" validate:"min=1" toml:"default_sets"`
	DefaultReps int          `json:"defaultReps" validate:"min=1" toml:"default_reps"`
	DefaultRIR  int          `json:"defaultRir" validate:"min=0,max=10" toml:"default_rir"`
	Kind        ExerciseKind `json:"kind,omitempty" validate:"omitempty,oneof=push pull" toml:"kind"`
	MuscleGroup string       `json:"muscleGroup,omitempty" toml:"muscle_group"`
	SetMode     SetMode      `json:"setMode,omitempty" validate:"omitempty,oneof=set_rep set_minutes set_per_arm" toml:"set_mode"`
	Tip         string       `json:"tip,omitempty" toml:"tip"`
}

// Prescription is what a player is asked to do for one exercise on one day.
type Prescription struct {
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
	RIR  int    `json:"rir"`
	Note string `json:"note,omitempty"`
}

// EndDateFor returns start + weeks*7 - 1 days.
func EndDateFor(startDate string, weeks int) (string, error) {
	if weeks < 1 || weeks > MaxWeeks {
		return "", fmt.Errorf("weeks must be within 1..%d, got %d", MaxWeeks, weeks)
	}
	return calendar.AddDays(startDate, weeks*7-1)
}

// Contains reports whether date falls within the routine's [start, end] range.
func (r *Routine) Contains(date string) bool {
	return calendar.InRange(date, r.StartDate, r.EndDate)
}

// ActiveRoutine picks the routine whose date range contains asOf.
// When more than one matches, the latest start date wins, then the most
// recently created, then the greatest id, so the answer never depends on
// storage order.
func ActiveRoutine(routines []Routine, asOf string) *Routine {
	var active *Routine
	for i := range routines {
		r := &routines[i]
		if !r.Contains(asOf) {
			continue
		}
		if active == nil || newer(r, active) {
			active = r
		}
	}
	return active
}

func newer(a, b *Routine) bool {
	if a.StartDate != b.StartDate {
		return a.StartDate > b.StartDate
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// CurrentWeekNumber is floor(days since start / 7) + 1, never below 1.
// It is not capped at the routine length.
func CurrentWeekNumber(startDate, today string) int {
	days, err := calendar.DaysBetween(startDate, today)
	if err != nil || days < 0 {
		return 1
	}
	return days/7 + 1
}

// EffectiveExerciseForWeek resolves the prescription of ex for the given week.
// A week past the configured ones uses the last configured week before it;
// with no usable config at all the template defaults apply.
func EffectiveExerciseForWeek(ex RoutineExercise, tpl ExerciseTemplate, week int) Prescription {
	cfg, ok := weekConfigFor(ex.Weeks, week)
	if !ok {
		return Prescription{
			Sets: tpl.DefaultSets,
			Reps: tpl.DefaultReps,
			RIR:  tpl.DefaultRIR,
		}
	}

	p := Prescription{
		Sets: cfg.Sets,
		Reps: tpl.DefaultReps,
		RIR:  cfg.RIR,
		Note: cfg.Note,
	}
	if cfg.Reps != nil && *cfg.Reps > 0 {
		p.Reps = *cfg.Reps
	}
	if p.Sets <= 0 {
		p.Sets = tpl.DefaultSets
	}
	return p
}

func weekConfigFor(weeks map[int]WeekConfig, week int) (WeekConfig, bool) {
	if cfg, ok := weeks[week]; ok {
		return cfg, true
	}
	best := 0
	for w := range weeks {
		if w <= week && w > best {
			best = w
		}
	}
	if best == 0 {
		return WeekConfig{}, false
	}
	return weeks[best], true
}

// ResolveDayType returns the stored type of the day. Routines created before
// day types existed have no entry: a day with exercises is then a training
// day, and an empty one a rest day.
func ResolveDayType(r *Routine, day calendar.Weekday, hasExercises bool) DayType {
	if r != nil {
		if dt, ok := r.DayTypes[day]; ok && dt.IsValid() {
			return dt
		}
	}
	if hasExercises {
		return DayTypeTraining
	}
	return DayTypeRest
}

// SortExercises orders exercises by weekday (Monday first) and then by Order.
func SortExercises(exercises []RoutineExercise) {
	dayIdx := map[calendar.Weekday]int{}
	for i, d := range calendar.Weekdays() {
		dayIdx[d] = i
	}
	sort.SliceStable(exercises, func(i, j int) bool {
		if exercises[i].Day != exercises[j].Day {
			return dayIdx[exercises[i].Day] < dayIdx[exercises[j].Day]
		}
		return exercises[i].Order < exercises[j].Order
	})
}

// ExercisesForDay filters and orders the exercises scheduled on day.
func ExercisesForDay(exercises []RoutineExercise, day calendar.Weekday) []RoutineExercise {
	var dayExercises []RoutineExercise
	for _, ex := range exercises {
		if ex.Day == day {
			dayExercises = append(dayExercises, ex)
		}
	}
	SortExercises(dayExercises)
	return dayExercises
}
