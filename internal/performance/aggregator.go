package performance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/club"
	"github.com/2beens/clubtrainer/internal/routines"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/internal/weights"
	"github.com/2beens/clubtrainer/internal/wellness"
	"github.com/2beens/clubtrainer/internal/workouts"
)

var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidBodyWeight = errors.New("invalid body weight")
)

type Params struct {
	PlayerID     string
	From         string
	To           string
	BodyWeightKg *float64
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Attendance struct {
	PresentDays int `json:"presentDays"`
	TotalDays   int `json:"totalDays"`
	Percent     int `json:"percent"`
}

type BestSet struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type DailyMax struct {
	Date      string  `json:"date"`
	MaxWeight float64 `json:"maxWeight"`
}

type ExerciseProgress struct {
	Name         string     `json:"name"`
	MaxWeight    float64    `json:"maxWeight"`
	BestSet      BestSet    `json:"bestSet"`
	SeriesByDate []DailyMax `json:"seriesByDate"`
}

// Report is the performance of one player over a period. Averages are nil
// when no session was recorded in the period.
type Report struct {
	PlayerID         string                      `json:"playerId"`
	Period           Period                      `json:"period"`
	Attendance       Attendance                  `json:"attendance"`
	Exercises        map[string]ExerciseProgress `json:"exercises"`
	BodyWeightKg     *float64                    `json:"bodyWeightKg"`
	RelativeStrength map[string]*float64         `json:"relativeStrength"`
	WellnessAverage  *float64                    `json:"wellnessAverage"`
	RPEAverage       *float64                    `json:"rpeAverage"`
}

type playerSource interface {
	GetPlayer(ctx context.Context, id string) (*club.Player, error)
	PresentDays(ctx context.Context, playerID, from, to string) ([]string, error)
}

type loadSource interface {
	FindInRange(ctx context.Context, playerID, from, to string) ([]workouts.LoadRecord, error)
}

type rpeSource interface {
	FindInRange(ctx context.Context, playerID, from, to string) ([]workouts.RPESession, error)
}

type wellnessSource interface {
	FindInRange(ctx context.Context, playerID, from, to string) ([]wellness.Session, error)
}

type templateSource interface {
	Template(ctx context.Context, id string) (*routines.ExerciseTemplate, error)
}

// Aggregator computes reports from stored records on every call; nothing is
// cached between calls.
type Aggregator struct {
	players   playerSource
	loads     loadSource
	rpe       rpeSource
	wellness  wellnessSource
	templates templateSource
}

func NewAggregator(
	players playerSource,
	loads loadSource,
	rpe rpeSource,
	wellness wellnessSource,
	templates templateSource,
) *Aggregator {
	return &Aggregator{
		players:   players,
		loads:     loads,
		rpe:       rpe,
		wellness:  wellness,
		templates: templates,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, params Params) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.performance.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("player.id", params.PlayerID),
		attribute.String("from", params.From),
		attribute.String("to", params.To),
	)

	daysApart, err := calendar.DaysBetween(params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, err)
	}
	if daysApart < 0 {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, params.From, params.To)
	}
	totalDays := daysApart + 1
	if params.BodyWeightKg != nil && !weights.ValidBodyWeight(*params.BodyWeightKg) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBodyWeight, *params.BodyWeightKg)
	}

	var (
		bodyWeight  = params.BodyWeightKg
		presentDays []string
		records     []workouts.LoadRecord
		sessions    []wellness.Session
		rpeSessions []workouts.RPESession
	)

	g, gCtx := errgroup.WithContext(ctx)
	if bodyWeight == nil {
		g.Go(func() error {
			player, err := a.players.GetPlayer(gCtx, params.PlayerID)
			if errors.Is(err, club.ErrPlayerNotFound) {
				log.Debugf("performance: player [%s] not found, no body weight", params.PlayerID)
				return nil
			}
			if err != nil {
				return fmt.Errorf("get player: %w", err)
			}
			bodyWeight = player.BodyWeightKg
			return nil
		})
	}
	g.Go(func() (err error) {
		presentDays, err = a.players.PresentDays(gCtx, params.PlayerID, params.From, params.To)
		return err
	})
	g.Go(func() (err error) {
		records, err = a.loads.FindInRange(gCtx, params.PlayerID, params.From, params.To)
		return err
	})
	g.Go(func() (err error) {
		sessions, err = a.wellness.FindInRange(gCtx, params.PlayerID, params.From, params.To)
		return err
	})
	g.Go(func() (err error) {
		rpeSessions, err = a.rpe.FindInRange(gCtx, params.PlayerID, params.From, params.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exercises := ExerciseProgressFrom(records)
	if err := a.fillNames(ctx, exercises); err != nil {
		return nil, err
	}

	report := &Report{
		PlayerID:         params.PlayerID,
		Period:           Period{From: params.From, To: params.To},
		Attendance:       AttendanceOver(len(presentDays), totalDays),
		Exercises:        exercises,
		BodyWeightKg:     bodyWeight,
		RelativeStrength: make(map[string]*float64, len(exercises)),
		WellnessAverage:  wellnessAverage(sessions),
		RPEAverage:       rpeAverage(rpeSessions),
	}
	for id, progress := range exercises {
		if bodyWeight == nil {
			report.RelativeStrength[id] = nil
			continue
		}
		report.RelativeStrength[id] = weights.RelativeStrength(progress.MaxWeight, *bodyWeight)
	}
	return report, nil
}

// fillNames looks up the catalog name of every exercise concurrently. An
// exercise gone from the catalog keeps its id as name.
func (a *Aggregator) fillNames(ctx context.Context, exercises map[string]ExerciseProgress) error {
	ids := make([]string, 0, len(exercises))
	for id := range exercises {
		ids = append(ids, id)
	}
	names := make([]string, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, id := range ids {
		g.Go(func() error {
			tpl, err := a.templates.Template(gCtx, id)
			if errors.Is(err, routines.ErrTemplateNotFound) {
				names[i] = id
				return nil
			}
			if err != nil {
				return fmt.Errorf("get template [%s]: %w", id, err)
			}
			names[i] = tpl.Name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, id := range ids {
		progress := exercises[id]
		progress.Name = names[i]
		exercises[id] = progress
	}
	return nil
}

// ExerciseProgressFrom groups the records by exercise. The best set is the
// one with the greatest weight*reps; the earliest one wins a tie.
func ExerciseProgressFrom(records []workouts.LoadRecord) map[string]ExerciseProgress {
	ordered := make([]workouts.LoadRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	progress := map[string]ExerciseProgress{}
	dailyMax := map[string]map[string]float64{}
	for _, rec := range ordered {
		p, seen := progress[rec.ExerciseID]
		if !seen {
			p = ExerciseProgress{
				Name:      rec.ExerciseID,
				MaxWeight: rec.Weight,
				BestSet:   BestSet{Date: rec.Date, Weight: rec.Weight, Reps: rec.Reps},
			}
			dailyMax[rec.ExerciseID] = map[string]float64{}
		}
		if rec.Weight > p.MaxWeight {
			p.MaxWeight = rec.Weight
		}
		if rec.Weight*float64(rec.Reps) > p.BestSet.Weight*float64(p.BestSet.Reps) {
			p.BestSet = BestSet{Date: rec.Date, Weight: rec.Weight, Reps: rec.Reps}
		}
		if current, ok := dailyMax[rec.ExerciseID][rec.Date]; !ok || rec.Weight > current {
			dailyMax[rec.ExerciseID][rec.Date] = rec.Weight
		}
		progress[rec.ExerciseID] = p
	}

	for id, p := range progress {
		series := make([]DailyMax, 0, len(dailyMax[id]))
		for date, weight := range dailyMax[id] {
			series = append(series, DailyMax{Date: date, MaxWeight: weight})
		}
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date < series[j].Date
		})
		p.SeriesByDate = series
		progress[id] = p
	}
	return progress
}

// AttendanceOver counts every calendar day of the period, not only training
// days.
func AttendanceOver(presentDays, totalDays int) Attendance {
	att := Attendance{
		PresentDays: presentDays,
		TotalDays:   totalDays,
	}
	if totalDays > 0 {
		att.Percent = int(math.Round(float64(presentDays) * 100 / float64(totalDays)))
	}
	return att
}

func wellnessAverage(sessions []wellness.Session) *float64 {
	if len(sessions) == 0 {
		return nil
	}
	sum := 0
	for i := range sessions {
		sum += sessions[i].NormalizedScore()
	}
	avg := weights.Round(float64(sum)/float64(len(sessions)), 1)
	return &avg
}

func rpeAverage(sessions []workouts.RPESession) *float64 {
	if len(sessions) == 0 {
		return nil
	}
	sum := 0
	for _, s := range sessions {
		sum += s.Value
	}
	avg := weights.Round(float64(sum)/float64(len(sessions)), 1)
	return &avg
}
