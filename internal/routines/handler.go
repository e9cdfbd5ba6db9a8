package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesService interface {
	CreateRoutine(ctx context.Context, req CreateRoutineRequest) (*RoutineWithExercises, error)
	SaveExercises(ctx context.Context, routineID string, inputs []ExerciseInput) ([]RoutineExercise, error)
	GetRoutine(ctx context.Context, id string) (*RoutineWithExercises, error)
	ListForCategory(ctx context.Context, categoryID string) ([]Routine, error)
	ActiveForCategory(ctx context.Context, categoryID, asOf string) (*Routine, error)
}

type ActiveRoutineResponse struct {
	Date    string   `json:"date"`
	Routine *Routine `json:"routine"`
	Week    int      `json:"weekNumber,omitempty"`
}

type Handler struct {
	service  routinesService
	calendar *calendar.Calendar
}

func NewHandler(service routinesService, cal *calendar.Calendar) *Handler {
	return &Handler{
		service:  service,
		calendar: cal,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.NewRoute().Subrouter()
	r.Use(middleware.RequireRole(auth.RoleStaff))

	r.HandleFunc("/routines", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-routine")
	r.HandleFunc("/routines/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/routines/{id}/exercises", h.HandleSaveExercises).Methods("PUT", "OPTIONS").Name("save-routine-exercises")
	r.HandleFunc("/categories/{id}/routines", h.HandleListForCategory).Methods("GET", "OPTIONS").Name("list-category-routines")
	r.HandleFunc("/categories/{id}/routines/active", h.HandleActiveForCategory).Methods("GET", "OPTIONS").Name("active-category-routine")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.create")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var req CreateRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create routine, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid routine payload")
		return
	}

	created, err := h.service.CreateRoutine(ctx, req)
	if err != nil {
		log.Errorf("failed to create routine [%s] for category [%s]: %s", req.Name, req.CategoryID, err)
		writeServiceError(w, err, "failed to create routine")
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, created)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "routine id empty")
		return
	}

	routine, err := h.service.GetRoutine(ctx, id)
	if err != nil {
		log.Errorf("failed to get routine [%s]: %s", id, err)
		writeServiceError(w, err, "failed to get routine")
		return
	}

	pkg.WriteJSONResponseOK(w, routine)
}

func (h *Handler) HandleSaveExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.save-exercises")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "routine id empty")
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var inputs []ExerciseInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		log.Tracef("save routine exercises, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid exercises payload")
		return
	}

	saved, err := h.service.SaveExercises(ctx, id, inputs)
	if err != nil {
		log.Errorf("failed to save exercises of routine [%s]: %s", id, err)
		writeServiceError(w, err, "failed to save routine exercises")
		return
	}

	pkg.WriteJSONResponseOK(w, saved)
}

func (h *Handler) HandleListForCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list-for-category")
	defer span.End()

	categoryID := mux.Vars(r)["id"]
	routines, err := h.service.ListForCategory(ctx, categoryID)
	if err != nil {
		log.Errorf("failed to list routines of category [%s]: %s", categoryID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to list routines")
		return
	}

	pkg.WriteJSONResponseOK(w, routines)
}

// HandleActiveForCategory answers with a null routine, not a 404, when the
// category has no routine running on the date.
func (h *Handler) HandleActiveForCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.active-for-category")
	defer span.End()

	categoryID := mux.Vars(r)["id"]
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.calendar.Today()
	} else if !calendar.IsValidDate(date) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	routine, err := h.service.ActiveForCategory(ctx, categoryID, date)
	if err != nil {
		log.Errorf("failed to get active routine of category [%s]: %s", categoryID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get active routine")
		return
	}

	resp := ActiveRoutineResponse{
		Date:    date,
		Routine: routine,
	}
	if routine != nil {
		resp.Week = CurrentWeekNumber(routine.StartDate, date)
	}
	pkg.WriteJSONResponseOK(w, resp)
}

func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRoutineNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRoutine),
		errors.Is(err, ErrUnknownExercise),
		errors.Is(err, ErrDuplicateID):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTemplateNotFound):
		pkg.WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		pkg.WriteJSONError(w, http.StatusInternalServerError, fallback)
	}
}
