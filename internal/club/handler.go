package club

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=club_mocks_test.go -package=club_test

type clubRepo interface {
	GetPlayer(ctx context.Context, id string) (*Player, error)
	ListCategories(ctx context.Context) ([]Category, error)
	MarkPresent(ctx context.Context, playerID, date string) error
	Unmark(ctx context.Context, playerID, date string) error
}

type Handler struct {
	repo clubRepo
}

func NewHandler(repo clubRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.NewRoute().Subrouter()
	r.Use(middleware.RequireRole(auth.RoleStaff))

	r.HandleFunc("/attendance", h.HandleAttendance).Methods("POST", "OPTIONS").Name("attendance")
	r.HandleFunc("/categories", h.HandleListCategories).Methods("GET", "OPTIONS").Name("list-categories")
}

func (h *Handler) HandleAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.club.attendance")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var attendance Attendance
	if err := json.NewDecoder(r.Body).Decode(&attendance); err != nil {
		log.Tracef("attendance, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid attendance payload")
		return
	}
	if err := pkg.ValidateStruct(attendance); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "attendance needs playerId and a YYYY-MM-DD date")
		return
	}

	if _, err := h.repo.GetPlayer(ctx, attendance.PlayerID); err != nil {
		log.Errorf("attendance for player [%s]: %s", attendance.PlayerID, err)
		pkg.WriteJSONError(w, http.StatusNotFound, "player not found")
		return
	}

	var err error
	if attendance.Present {
		err = h.repo.MarkPresent(ctx, attendance.PlayerID, attendance.Date)
	} else {
		err = h.repo.Unmark(ctx, attendance.PlayerID, attendance.Date)
	}
	if err != nil {
		log.Errorf("failed to record attendance of [%s] on %s: %s", attendance.PlayerID, attendance.Date, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to record attendance")
		return
	}

	pkg.WriteJSONResponseOK(w, attendance)
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.club.list-categories")
	defer span.End()

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		log.Errorf("failed to list categories: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	pkg.WriteJSONResponseOK(w, categories)
}
