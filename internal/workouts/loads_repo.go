package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

func loadsKeyPrefix(playerID string) string { return "loads:" + playerID + ":" }
func loadsKey(playerID, date string) string { return loadsKeyPrefix(playerID) + date }

type LoadsRepo struct {
	store store.Store
}

func NewLoadsRepo(s store.Store) *LoadsRepo {
	return &LoadsRepo{
		store: s,
	}
}

// inRange reads the player's day lists dated within [from, to], oldest day
// first; records of one day keep their saved order.
func (r *LoadsRepo) inRange(ctx context.Context, playerID, from, to string) ([]LoadRecord, error) {
	prefix := loadsKeyPrefix(playerID)
	keys, err := r.store.KeysMatching(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan load keys: %w", err)
	}

	dates := make([]string, 0, len(keys))
	for _, key := range keys {
		date := strings.TrimPrefix(key, prefix)
		if !calendar.IsValidDate(date) {
			continue
		}
		if (from == "" && to == "") || calendar.InRange(date, from, to) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	var records []LoadRecord
	for _, date := range dates {
		day, err := store.ListJSON[LoadRecord](ctx, r.store, loadsKey(playerID, date))
		if err != nil {
			return nil, err
		}
		records = append(records, day...)
	}
	return records, nil
}

// ReplaceSession swaps every record of the player on date for records.
// Only that day's list is rewritten, in one atomic store call. Two
// concurrent saves of the same day race and the last one wins.
func (r *LoadsRepo) ReplaceSession(ctx context.Context, playerID, date string, records []LoadRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loads.replace-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("player.id", playerID),
		attribute.String("date", date),
		attribute.Int("records", len(records)),
	)

	if !calendar.IsValidDate(date) {
		return fmt.Errorf("invalid session date [%s]", date)
	}
	for i, rec := range records {
		if rec.PlayerID != playerID || rec.Date != date {
			return fmt.Errorf("record %d does not belong to player [%s] on %s", i, playerID, date)
		}
	}
	if err := pkg.ValidateStruct(records); err != nil {
		return fmt.Errorf("invalid load records: %w", err)
	}

	values := make([]string, 0, len(records))
	for _, rec := range records {
		recJson, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal load record [%s]: %w", rec.ID, err)
		}
		values = append(values, string(recJson))
	}

	if err := r.store.ReplaceList(ctx, loadsKey(playerID, date), values...); err != nil {
		return fmt.Errorf("replace load records: %w", err)
	}
	return nil
}

// LatestForExercise returns the player's most recent set of the exercise by
// timestamp, or nil when none was logged.
func (r *LoadsRepo) LatestForExercise(ctx context.Context, playerID, exerciseID string) (_ *LoadRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loads.latest-for-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := r.inRange(ctx, playerID, "", "")
	if err != nil {
		return nil, err
	}

	var latest *LoadRecord
	for i := range records {
		rec := &records[i]
		if rec.ExerciseID != exerciseID {
			continue
		}
		if latest == nil || !rec.Timestamp.Before(latest.Timestamp) {
			latest = rec
		}
	}
	return latest, nil
}

// FindInRange returns the player's records dated within [from, to], oldest
// day first.
func (r *LoadsRepo) FindInRange(ctx context.Context, playerID, from, to string) (_ []LoadRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loads.find-in-range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.inRange(ctx, playerID, from, to)
}
