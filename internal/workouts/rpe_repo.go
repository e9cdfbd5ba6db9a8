package workouts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
)

func rpeKeyPrefix(playerID string) string { return "rpe:" + playerID + ":" }
func rpeKey(playerID, date string) string { return rpeKeyPrefix(playerID) + date }

type RPERepo struct {
	store store.Store
}

func NewRPERepo(s store.Store) *RPERepo {
	return &RPERepo{
		store: s,
	}
}

// Save writes the RPE of its player and date, overwriting an earlier one.
func (r *RPERepo) Save(ctx context.Context, rpe RPESession) error {
	return store.SetJSON(ctx, r.store, rpeKey(rpe.PlayerID, rpe.Date), rpe)
}

// FindInRange scans the player's RPE keys and keeps those dated within
// [from, to], oldest first.
func (r *RPERepo) FindInRange(ctx context.Context, playerID, from, to string) (_ []RPESession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rpe.find-in-range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prefix := rpeKeyPrefix(playerID)
	keys, err := r.store.KeysMatching(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan rpe keys: %w", err)
	}

	var sessions []RPESession
	for _, key := range keys {
		date := strings.TrimPrefix(key, prefix)
		if !calendar.IsValidDate(date) || !calendar.InRange(date, from, to) {
			continue
		}
		rpe, err := store.GetJSON[RPESession](ctx, r.store, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *rpe)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date < sessions[j].Date
	})
	return sessions, nil
}
