package performance

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/calendar"
	"github.com/2beens/clubtrainer/internal/middleware"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/internal/weights"
	"github.com/2beens/clubtrainer/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=performance_mocks_test.go -package=performance_test

// DefaultPeriodDays is the report length when the request names no range.
const DefaultPeriodDays = 28

type reportAggregator interface {
	Aggregate(ctx context.Context, params Params) (*Report, error)
}

type Handler struct {
	aggregator reportAggregator
	calendar   *calendar.Calendar
}

func NewHandler(aggregator reportAggregator, cal *calendar.Calendar) *Handler {
	return &Handler{
		aggregator: aggregator,
		calendar:   cal,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.NewRoute().Subrouter()
	r.Use(middleware.RequireRole(auth.RoleStaff, auth.RolePlayer))
	r.HandleFunc("/reports/performance", h.HandlePerformance).Methods("GET", "OPTIONS").Name("reports-performance")
}

// HandlePerformance serves the report of ?player= over ?from=&to=. Players
// may only read their own report; staff may read anyone's.
func (h *Handler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.report")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()
	playerID := query.Get("player")
	if playerID == "" {
		if session.IsStaff() {
			pkg.WriteJSONError(w, http.StatusBadRequest, "missing player")
			return
		}
		playerID = session.ID
	}
	if !session.IsStaff() && playerID != session.ID {
		pkg.WriteJSONError(w, http.StatusForbidden, "forbidden")
		return
	}

	params := Params{
		PlayerID: playerID,
		From:     query.Get("from"),
		To:       query.Get("to"),
	}
	if params.To == "" {
		params.To = h.calendar.Today()
	}
	if params.From == "" {
		from, err := calendar.AddDays(params.To, -(DefaultPeriodDays - 1))
		if err != nil {
			pkg.WriteJSONError(w, http.StatusBadRequest, "invalid date range")
			return
		}
		params.From = from
	}

	if bw := query.Get("bodyweight"); bw != "" {
		bodyWeight, err := strconv.ParseFloat(bw, 64)
		if err != nil || !weights.ValidBodyWeight(bodyWeight) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "invalid body weight")
			return
		}
		params.BodyWeightKg = &bodyWeight
	}

	report, err := h.aggregator.Aggregate(ctx, params)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrInvalidBodyWeight) {
			pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("failed to aggregate performance of player [%s]: %s", playerID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to build performance report")
		return
	}

	pkg.WriteJSONResponseOK(w, report)
}
