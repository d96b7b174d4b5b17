package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/health"
	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/store"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	testConfig(t)

	engine, err := health.NewEngine()
	require.NoError(t, err)

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "serve.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	return newRouter(engine, st)
}

func sampleInput() *model.FinancialHealthInput {
	return &model.FinancialHealthInput{
		UserID: "user-1",
		PortfolioSnapshot: &model.PortfolioSnapshot{
			NetWorth:    50_000,
			TotalAssets: 60_000,
			Accounts:    []model.Account{{ID: "acc-1", Balance: 10_000, Liquid: true}},
			Income:      []model.IncomeSource{{ID: "inc-1", Type: "salary", MonthlyAmount: 6_000, Stable: true}},
			Expenses:    []model.Expense{{ID: "exp-1", MonthlyAmount: 4_500, Essential: true}},
		},
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_CreateReport(t *testing.T) {
	router := testRouter(t)

	body, err := json.Marshal(sampleInput())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var report model.FinancialHealthReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "user-1", report.UserID)
	assert.Len(t, report.Categories, 7)
	assert.GreaterOrEqual(t, report.HealthScore.Score, 0.0)
	assert.LessOrEqual(t, report.HealthScore.Score, 100.0)
}

func TestRouter_CreateReportAppendsTrend(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(sampleInput())
	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	trendReq := httptest.NewRequest(http.MethodGet, "/v1/users/user-1/trend", nil)
	trendRR := httptest.NewRecorder()
	router.ServeHTTP(trendRR, trendReq)

	require.Equal(t, http.StatusOK, trendRR.Code)
	var points []model.TrendPoint
	require.NoError(t, json.Unmarshal(trendRR.Body.Bytes(), &points))
	require.Len(t, points, 1)
	assert.WithinDuration(t, time.Now().UTC(), points[0].Date, time.Minute)
}

func TestRouter_CreateReportBadJSON(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestRouter_CreateReportPrecondition(t *testing.T) {
	router := testRouter(t)

	in := sampleInput()
	in.UserID = ""
	body, _ := json.Marshal(in)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "user_id is required")
}

func TestRouter_TrendEmpty(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/nobody/trend", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestRateLimiter(t *testing.T) {
	limited := rateLimiter(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	limited.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	limited.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
