package wellness

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

const rulesKey = "wellness:rules"

var (
	ErrSessionNotFound = errors.New("wellness session not found")
	ErrNoRules         = errors.New("no wellness rules configured")
)

func sessionKeyPrefix(playerID string) string {
	return "wellness:" + playerID + ":"
}

func sessionKey(playerID, date string) string {
	return sessionKeyPrefix(playerID) + date
}

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

// SaveSession writes the session of its player and date, replacing any
// earlier one of the same day.
func (r *Repo) SaveSession(ctx context.Context, session Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.save-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", session.PlayerID))

	return store.SetJSON(ctx, r.store, sessionKey(session.PlayerID, session.Date), session)
}

func (r *Repo) GetSession(ctx context.Context, playerID, date string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.get-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := store.GetJSON[Session](ctx, r.store, sessionKey(playerID, date))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	return session, err
}

// FindInRange returns the sessions of a player dated within [from, to],
// oldest first. The store has no range index: player keys are scanned and
// filtered by date.
func (r *Repo) FindInRange(ctx context.Context, playerID, from, to string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.wellness.find-in-range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("player.id", playerID),
		attribute.String("from", from),
		attribute.String("to", to),
	)

	prefix := sessionKeyPrefix(playerID)
	keys, err := r.store.KeysMatching(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan wellness keys: %w", err)
	}

	var sessions []Session
	for _, key := range keys {
		date := strings.TrimPrefix(key, prefix)
		if !calendar.IsValidDate(date) || !calendar.InRange(date, from, to) {
			continue
		}
		session, err := store.GetJSON[Session](ctx, r.store, key)
		if errors.Is(err, store.ErrNotFound) {
			// removed between scan and read
			continue
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date < sessions[j].Date
	})
	return sessions, nil
}

func (r *Repo) GetRules(ctx context.Context) ([]Rule, error) {
	rules, err := store.GetJSON[[]Rule](ctx, r.store, rulesKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoRules
	}
	if err != nil {
		return nil, err
	}
	return *rules, nil
}

func (r *Repo) SaveRules(ctx context.Context, rules []Rule) error {
	return store.SetJSON(ctx, r.store, rulesKey, rules)
}
