package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

var ErrInvalidSession = errors.New("invalid training session")

// SetInput is one set as logged by the player.
type SetInput struct {
	ExerciseID string  `json:"exerciseId" validate:"required"`
	Weight     float64 `json:"weight" validate:"gte=0,lte=1000"`
	Reps       int     `json:"reps" validate:"min=1,max=100"`
	SetIndex   int     `json:"setIndex" validate:"min=0"`
}

// SessionInput is the complete set list of one training day. An empty Date
// means today.
type SessionInput struct {
	Date string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Sets []SetInput `json:"sets" validate:"max=200,dive"`
}

type RPEInput struct {
	Date      string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	RoutineID string           `json:"routineId" validate:"required"`
	Day       calendar.Weekday `json:"day" validate:"oneof=lunes martes miercoles jueves viernes sabado"`
	Value     int              `json:"value" validate:"min=1,max=10"`
}

type loadsRepo interface {
	ReplaceSession(ctx context.Context, playerID, date string, records []LoadRecord) error
}

type rpeRepo interface {
	Save(ctx context.Context, rpe RPESession) error
}

type Service struct {
	loads          loadsRepo
	rpe            rpeRepo
	calendar       *calendar.Calendar
	metricsManager *metrics.Manager
	now            func() time.Time
	newID          func() string
}

func NewService(loads loadsRepo, rpe rpeRepo, cal *calendar.Calendar, metricsManager *metrics.Manager) *Service {
	return &Service{
		loads:          loads,
		rpe:            rpe,
		calendar:       cal,
		metricsManager: metricsManager,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// SaveSession replaces the player's load records of the day with input.
// Submitting the same sets twice leaves a single copy of them.
func (s *Service) SaveSession(ctx context.Context, playerID string, input SessionInput) (_ []LoadRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pkg.ValidateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSession, err)
	}

	date := input.Date
	if date == "" {
		date = s.calendar.Today()
	}
	span.SetAttributes(
		attribute.String("player.id", playerID),
		attribute.String("date", date),
	)

	timestamp := s.now().UTC()
	records := make([]LoadRecord, 0, len(input.Sets))
	for _, set := range input.Sets {
		records = append(records, LoadRecord{
			ID:         s.newID(),
			PlayerID:   playerID,
			ExerciseID: set.ExerciseID,
			Weight:     set.Weight,
			Reps:       set.Reps,
			SetIndex:   set.SetIndex,
			Date:       date,
			Timestamp:  timestamp,
		})
	}

	if err := s.loads.ReplaceSession(ctx, playerID, date, records); err != nil {
		return nil, fmt.Errorf("replace session of %s: %w", date, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsReplaced.Inc()
	}
	log.Debugf("player [%s] saved %d sets on %s", playerID, len(records), date)

	return records, nil
}

// SaveRPE stores the player's perceived effort of the day, replacing an
// earlier report of the same date.
func (s *Service) SaveRPE(ctx context.Context, playerID string, input RPEInput) (_ *RPESession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save-rpe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := pkg.ValidateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSession, err)
	}

	rpe := RPESession{
		PlayerID:  playerID,
		Date:      input.Date,
		RoutineID: input.RoutineID,
		Day:       input.Day,
		Value:     input.Value,
		Timestamp: s.now().UTC(),
	}
	if rpe.Date == "" {
		rpe.Date = s.calendar.Today()
	}

	if err := s.rpe.Save(ctx, rpe); err != nil {
		return nil, fmt.Errorf("save rpe: %w", err)
	}
	return &rpe, nil
}
