package workouts

import (
	"time"

	"github.com/2beens/clubtrainer/internal/calendar"
)

// LoadRecord is one completed set. ExerciseID is the catalog exercise
// (template) id so history survives a change of routine.
type LoadRecord struct {
	ID         string    `json:"id" validate:"required"`
	PlayerID   string    `json:"playerId" validate:"required"`
	ExerciseID string    `json:"exerciseId" validate:"required"`
	Weight     float64   `json:"weight" validate:"gte=0,lte=1000"`
	Reps       int       `json:"reps" validate:"min=1,max=100"`
	SetIndex   int       `json:"setIndex" validate:"min=0"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Timestamp  time.Time `json:"timestamp"`
}

// RPESession is the effort a player reports after a workout, one per day.
type RPESession struct {
	PlayerID  string           `json:"playerId" validate:"required"`
	Date      string           `json:"date" validate:"required,datetime=2006-01-02"`
	RoutineID string           `json:"routineId" validate:"required"`
	Day       calendar.Weekday `json:"day" validate:"oneof=lunes martes miercoles jueves viernes sabado"`
	Value     int              `json:"value" validate:"min=1,max=10"`
	Timestamp time.Time        `json:"timestamp"`
}
