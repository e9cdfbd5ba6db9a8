package misc

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
	"github.com/2beens/clubtrainer/pkg"
)

// StorePinger checks the store is reachable.
type StorePinger func(ctx context.Context) error

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type Handler struct {
	pingStore   StorePinger
	versionInfo string
}

func NewHandler(pingStore StorePinger, versionInfo string) *Handler {
	return &Handler{
		pingStore:   pingStore,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/whoami", handler.handleWhoAmI).Methods("GET", "OPTIONS").Name("whoami")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("I'm OK, thanks ;)"), http.StatusOK)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	if err := handler.pingStore(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("health check, ping store: %s", err)
		pkg.WriteJSONResponse(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Store: "unreachable"})
		return
	}
	pkg.WriteJSONResponseOK(w, HealthResponse{Status: "ok", Store: "ok"})
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte(handler.versionInfo), http.StatusOK)
}

// handleWhoAmI echoes the session the request was authorized with.
func (handler *Handler) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	pkg.WriteJSONResponseOK(w, session)
}
