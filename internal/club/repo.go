package club

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/store"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
)

const (
	playerKeyPrefix   = "player:"
	categoryKeyPrefix = "category:"
	presentMarker     = "1"
)

func playerKey(id string) string   { return playerKeyPrefix + id }
func categoryKey(id string) string { return categoryKeyPrefix + id }

func attendanceKeyPrefix(playerID string) string { return "attendance:" + playerID + ":" }
func attendanceKey(playerID, date string) string { return attendanceKeyPrefix(playerID) + date }

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) GetPlayer(ctx context.Context, id string) (_ *Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.club.get-player")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", id))

	player, err := store.GetJSON[Player](ctx, r.store, playerKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return player, err
}

func (r *Repo) PutPlayer(ctx context.Context, player Player) error {
	return store.SetJSON(ctx, r.store, playerKey(player.ID), player)
}

func (r *Repo) GetCategory(ctx context.Context, id string) (*Category, error) {
	category, err := store.GetJSON[Category](ctx, r.store, categoryKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	return category, err
}

func (r *Repo) PutCategory(ctx context.Context, category Category) error {
	return store.SetJSON(ctx, r.store, categoryKey(category.ID), category)
}

// ListCategories scans category records. Routine lists share the prefix
// (category:{id}:routines) and are skipped.
func (r *Repo) ListCategories(ctx context.Context) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.club.list-categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	keys, err := r.store.KeysMatching(ctx, categoryKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	categories := []Category{}
	for _, key := range keys {
		if strings.Contains(strings.TrimPrefix(key, categoryKeyPrefix), ":") {
			continue
		}
		category, err := store.GetJSON[Category](ctx, r.store, key)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *Repo) MarkPresent(ctx context.Context, playerID, date string) error {
	return r.store.Set(ctx, attendanceKey(playerID, date), presentMarker)
}

// Unmark removes the presence record; absence has no record of its own.
func (r *Repo) Unmark(ctx context.Context, playerID, date string) error {
	return r.store.Delete(ctx, attendanceKey(playerID, date))
}

// PresentDays lists the dates within [from, to] the player was present on,
// oldest first.
func (r *Repo) PresentDays(ctx context.Context, playerID, from, to string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.club.present-days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	prefix := attendanceKeyPrefix(playerID)
	keys, err := r.store.KeysMatching(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan attendance keys: %w", err)
	}

	var days []string
	for _, key := range keys {
		date := strings.TrimPrefix(key, prefix)
		if calendar.IsValidDate(date) && calendar.InRange(date, from, to) {
			days = append(days, date)
		}
	}
	sort.Strings(days)
	return days, nil
}
