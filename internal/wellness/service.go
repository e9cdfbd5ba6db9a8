package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
)

var ErrInvalidRule = errors.New("invalid wellness rule")

type wellnessRepo interface {
	SaveSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, playerID, date string) (*Session, error)
	FindInRange(ctx context.Context, playerID, from, to string) ([]Session, error)
	GetRules(ctx context.Context) ([]Rule, error)
	SaveRules(ctx context.Context, rules []Rule) error
}

type Service struct {
	repo           wellnessRepo
	calendar       *calendar.Calendar
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo wellnessRepo, cal *calendar.Calendar, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		calendar:       cal,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Submit stores today's questionnaire of the player. A second submission on
// the same day overwrites the first.
func (s *Service) Submit(ctx context.Context, playerID string, answers Answers) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.wellness.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := answers.Validate(); err != nil {
		return nil, err
	}

	session := Session{
		PlayerID:     playerID,
		Date:         s.calendar.Today(),
		Answers:      answers[:],
		Score:        ComputeScore(answers),
		ScaleVersion: ScaleCurrent,
		Timestamp:    s.now().UTC(),
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save wellness session: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWellnessSubmissions.Inc()
	}
	log.Debugf("wellness session of player [%s] on %s, score %d", playerID, session.Date, session.Score)

	return &session, nil
}

// SessionFor returns the player's session on date, or nil when there is none.
func (s *Service) SessionFor(ctx context.Context, playerID, date string) (*Session, error) {
	session, err := s.repo.GetSession(ctx, playerID, date)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) TodaySession(ctx context.Context, playerID string) (*Session, error) {
	return s.SessionFor(ctx, playerID, s.calendar.Today())
}

func (s *Service) FindInRange(ctx context.Context, playerID, from, to string) ([]Session, error) {
	return s.repo.FindInRange(ctx, playerID, from, to)
}

// Rules returns the configured rules, or DefaultRules when none were saved.
func (s *Service) Rules(ctx context.Context) ([]Rule, error) {
	rules, err := s.repo.GetRules(ctx)
	if errors.Is(err, ErrNoRules) {
		return DefaultRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wellness rules: %w", err)
	}
	return rules, nil
}

// SaveRules normalizes every rule and replaces the whole rule set. One
// invalid rule rejects the lot.
func (s *Service) SaveRules(ctx context.Context, rules []Rule) (_ []Rule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.wellness.save-rules")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		n, err := NormalizeRule(rule)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %s", ErrInvalidRule, i, err)
		}
		normalized = append(normalized, n)
	}

	if err := s.repo.SaveRules(ctx, normalized); err != nil {
		return nil, fmt.Errorf("save wellness rules: %w", err)
	}
	return normalized, nil
}
