package wellness_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/clubtrainer/internal/auth"
	"github.com/2beens/clubtrainer/internal/telemetry/metrics"
	"github.com/2beens/clubtrainer/internal/wellness"
)

func newTestRouter(t *testing.T, session *auth.Session) (*mux.Router, *MockwellnessService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockwellnessService(ctrl)
	h := wellness.NewHandler(mockService)

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if session != nil {
				req = req.WithContext(auth.WithSession(req.Context(), session))
			}
			next.ServeHTTP(w, req)
		})
	})
	h.SetupRoutes(r, nil, 0, metrics.NewTestManager())
	return r, mockService
}

func TestHandler_HandleSubmit(t *testing.T) {
	router, mockService := newTestRouter(t, &auth.Session{ID: "p1", Role: auth.RolePlayer})

	mockService.EXPECT().
		Submit(gomock.Any(), "p1", wellness.Answers{2, 2, 2, 2, 2}).
		DoAndReturn(func(_ any, playerID string, answers wellness.Answers) (*wellness.Session, error) {
			return &wellness.Session{
				PlayerID:     playerID,
				Date:         "2026-01-13",
				Answers:      answers[:],
				Score:        wellness.ComputeScore(answers),
				ScaleVersion: wellness.ScaleCurrent,
			}, nil
		})

	req, err := http.NewRequest("POST", "/wellness", bytes.NewBufferString(`{"answers":[2,2,2,2,2]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var saved wellness.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Equal(t, 6, saved.Score)

	for _, body := range []string{
		`{"answers":[2,2,2,2]}`,
		`{"answers":[2,2,2,2,2,2]}`,
		`{"answers":[2,2,2,2,6]}`,
		`{"answers":"bad"}`,
	} {
		req, err := http.NewRequest("POST", "/wellness", bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestHandler_HandleSubmit_StaffForbidden(t *testing.T) {
	router, _ := newTestRouter(t, &auth.Session{ID: "s1", Role: auth.RoleStaff})

	req, err := http.NewRequest("POST", "/wellness", bytes.NewBufferString(`{"answers":[2,2,2,2,2]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rr.Body.String())
}

func TestHandler_HandleToday(t *testing.T) {
	router, mockService := newTestRouter(t, &auth.Session{ID: "p1", Role: auth.RolePlayer})

	mockService.EXPECT().TodaySession(gomock.Any(), "p1").Return(nil, nil)
	req, err := http.NewRequest("GET", "/wellness/today", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"session":null,"score":null}`, rr.Body.String())

	mockService.EXPECT().TodaySession(gomock.Any(), "p1").Return(&wellness.Session{
		PlayerID: "p1", Date: "2026-01-13", Score: 3, ScaleVersion: wellness.ScaleLegacy,
	}, nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp wellness.TodayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Score)
	assert.Equal(t, 15, *resp.Score)
}

func TestHandler_Rules(t *testing.T) {
	router, mockService := newTestRouter(t, &auth.Session{ID: "s1", Role: auth.RoleStaff})

	mockService.EXPECT().Rules(gomock.Any()).Return(wellness.DefaultRules(), nil)
	req, err := http.NewRequest("GET", "/wellness/rules", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var rules []wellness.Rule
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rules))
	assert.Equal(t, wellness.DefaultRules(), rules)

	mockService.EXPECT().
		SaveRules(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, rules []wellness.Rule) ([]wellness.Rule, error) {
			require.Len(t, rules, 1)
			assert.Equal(t, wellness.MetricFatigue, rules[0].Metric)
			return []wellness.Rule{{Metric: wellness.MetricScore, Operator: wellness.OpLess, Threshold: 15, Action: wellness.ActionRemoveSets, Amount: 1}}, nil
		})
	req, err = http.NewRequest("PUT", "/wellness/rules", bytes.NewBufferString(
		`[{"metric":"fatigue","operator":"<","threshold":3,"action":"remove_sets","amount":1}]`,
	))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// players may not read the rules
	playerRouter, _ := newTestRouter(t, &auth.Session{ID: "p1", Role: auth.RolePlayer})
	req, err = http.NewRequest("GET", "/wellness/rules", nil)
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	playerRouter.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
