package wellness

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=wellness_mocks_test.go -package=wellness_test

type wellnessService interface {
	Submit(ctx context.Context, playerID string, answers Answers) (*Session, error)
	TodaySession(ctx context.Context, playerID string) (*Session, error)
	Rules(ctx context.Context) ([]Rule, error)
	SaveRules(ctx context.Context, rules []Rule) ([]Rule, error)
}

type SubmitRequest struct {
	Answers []int `json:"answers" validate:"len=5,dive,min=1,max=5"`
}

type TodayResponse struct {
	Session *Session `json:"session"`
	Score   *int     `json:"score"`
}

type Handler struct {
	service wellnessService
}

func NewHandler(service wellnessService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	submitPerMin int,
	metricsManager *metrics.Manager,
) {
	playerRouter := mainRouter.NewRoute().Subrouter()
	playerRouter.Use(middleware.RequireRole(auth.RolePlayer))
	playerRouter.HandleFunc("/wellness/today", h.HandleToday).Methods("GET", "OPTIONS").Name("wellness-today")

	submitRouter := mainRouter.NewRoute().Subrouter()
	submitRouter.Use(middleware.RequireRole(auth.RolePlayer))
	if rateLimiter != nil {
		submitRouter.Use(middleware.RateLimit(rateLimiter, "wellness-submit", submitPerMin, metricsManager))
	}
	submitRouter.HandleFunc("/wellness", h.HandleSubmit).Methods("POST", "OPTIONS").Name("wellness-submit")

	staffRouter := mainRouter.NewRoute().Subrouter()
	staffRouter.Use(middleware.RequireRole(auth.RoleStaff))
	staffRouter.HandleFunc("/wellness/rules", h.HandleGetRules).Methods("GET", "OPTIONS").Name("wellness-rules")
	staffRouter.HandleFunc("/wellness/rules", h.HandleSaveRules).Methods("PUT", "OPTIONS").Name("wellness-save-rules")
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.submit")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("wellness submit, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid wellness payload")
		return
	}
	if err := pkg.ValidateStruct(req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "answers must be 5 values within 1..5")
		return
	}

	var answers Answers
	copy(answers[:], req.Answers)
	saved, err := h.service.Submit(ctx, session.ID, answers)
	if err != nil {
		log.Errorf("failed to save wellness of player [%s]: %s", session.ID, err)
		if errors.Is(err, ErrInvalidAnswers) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to save wellness session")
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, saved)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.today")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	today, err := h.service.TodaySession(ctx, session.ID)
	if err != nil {
		log.Errorf("failed to get today's wellness of player [%s]: %s", session.ID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get wellness session")
		return
	}

	resp := TodayResponse{Session: today}
	if today != nil {
		score := today.NormalizedScore()
		resp.Score = &score
	}
	pkg.WriteJSONResponseOK(w, resp)
}

func (h *Handler) HandleGetRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.get-rules")
	defer span.End()

	rules, err := h.service.Rules(ctx)
	if err != nil {
		log.Errorf("failed to get wellness rules: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get wellness rules")
		return
	}
	pkg.WriteJSONResponseOK(w, rules)
}

func (h *Handler) HandleSaveRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.save-rules")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var rules []Rule
	if err := json.NewDecoder(r.Body).Decode(&rules); err != nil {
		log.Tracef("wellness save rules, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid rules payload")
		return
	}

	saved, err := h.service.SaveRules(ctx, rules)
	if err != nil {
		log.Errorf("failed to save wellness rules: %s", err)
		if errors.Is(err, ErrInvalidRule) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to save wellness rules")
		return
	}
	pkg.WriteJSONResponseOK(w, saved)
}
