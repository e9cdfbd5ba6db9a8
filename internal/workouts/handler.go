package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutResolver interface {
	Resolve(ctx context.Context, playerID, requestedDay string) (*DailyWorkout, error)
}

type workoutsService interface {
	SaveSession(ctx context.Context, playerID string, input SessionInput) ([]LoadRecord, error)
	SaveRPE(ctx context.Context, playerID string, input RPEInput) (*RPESession, error)
}

type Handler struct {
	resolver workoutResolver
	service  workoutsService
}

func NewHandler(resolver workoutResolver, service workoutsService) *Handler {
	return &Handler{
		resolver: resolver,
		service:  service,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	playerRouter := mainRouter.NewRoute().Subrouter()
	playerRouter.Use(middleware.RequireRole(auth.RolePlayer))
	playerRouter.HandleFunc("/workout/today", h.HandleToday).Methods("GET", "OPTIONS").Name("workout-today")
	playerRouter.HandleFunc("/workout/session", h.HandleSaveSession).Methods("POST", "OPTIONS").Name("workout-session")
	playerRouter.HandleFunc("/workout/rpe", h.HandleSaveRPE).Methods("POST", "OPTIONS").Name("workout-rpe")
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.today")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	workout, err := h.resolver.Resolve(ctx, session.ID, r.URL.Query().Get("day"))
	if err != nil {
		log.Errorf("failed to resolve workout of player [%s]: %s", session.ID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to resolve workout")
		return
	}

	if workout.Status != StatusOK {
		log.Debugf("workout of player [%s]: %s", session.ID, workout.Status)
	}
	pkg.WriteJSONResponseOK(w, workout)
}

func (h *Handler) HandleSaveSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save-session")
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

	var input SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("workout session, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid session payload")
		return
	}

	records, err := h.service.SaveSession(ctx, session.ID, input)
	if err != nil {
		log.Errorf("failed to save session of player [%s]: %s", session.ID, err)
		if errors.Is(err, ErrInvalidSession) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	pkg.WriteJSONResponseOK(w, records)
}

func (h *Handler) HandleSaveRPE(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save-rpe")
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

	var input RPEInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("workout rpe, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid rpe payload")
		return
	}

	rpe, err := h.service.SaveRPE(ctx, session.ID, input)
	if err != nil {
		log.Errorf("failed to save rpe of player [%s]: %s", session.ID, err)
		if errors.Is(err, ErrInvalidSession) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to save rpe")
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, rpe)
}
