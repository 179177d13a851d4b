package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar_quotes/internal/adapter/http/handlers"
	repository2 "solar_quotes/internal/adapter/persistence/repository"
	"solar_quotes/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteSnapshotRepository(t *testing.T) {
	t.Run("none disables persistence", func(t *testing.T) {
		repo, err := newQuoteSnapshotRepository("none", nil)
		require.NoError(t, err)
		require.Nil(t, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		t.Setenv("REDIS_ADDR", mr.Addr())

		repo, err := newQuoteSnapshotRepository(" Redis ", nil)
		require.NoError(t, err)
		require.IsType(t, &repository2.QuoteSnapshotRedisRepository{}, repo)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		t.Setenv("REDIS_ADDR", mr.Addr())
		mr.Close()

		_, err := newQuoteSnapshotRepository("redis", nil)
		require.Error(t, err)
	})

	t.Run("dynamodb is the default", func(t *testing.T) {
		repo, err := newQuoteSnapshotRepository("", nil)
		require.NoError(t, err)
		require.IsType(t, &repository2.QuoteSnapshotDynamoRepository{}, repo)
	})
}

func TestNewQuoteStore_RestoresFromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	t.Setenv("QUOTE_SNAPSHOT_KEY", "")
	t.Setenv("SEED_DEMO_DATA", "")

	repo, err := newQuoteSnapshotRepository("redis", nil)
	require.NoError(t, err)

	first := newQuoteStore(repo)
	created, err := first.SubmitQuoteRequest(context.Background(), usecase.NewQuoteRequest{UserID: "user-1", MonthlyBill: 850})
	require.NoError(t, err)
	require.True(t, mr.Exists(usecase.DefaultQuoteSnapshotKey))

	second := newQuoteStore(repo)
	got, err := second.GetQuoteRequestByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.Request.ID)
}

func TestQuoteRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("SEED_DEMO_DATA", "")

	store := newQuoteStore(nil)
	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, handlers.NewQuoteRequestHandler(store), handlers.NewVendorQuoteHandler(store, usecase.NewQuoteStatsUseCase(store)))

	for _, tc := range []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/v1/quote-requests/available", http.StatusOK},
		{http.MethodGet, "/v1/quote-requests?user_id=user-1", http.StatusOK},
		{http.MethodGet, "/v1/quote-requests/missing", http.StatusNotFound},
		{http.MethodPatch, "/v1/quote-requests/missing/responses/resp-1/accept", http.StatusNotFound},
		{http.MethodGet, "/v1/vendors/vendor-1/quote-responses", http.StatusOK},
		{http.MethodGet, "/v1/vendors/vendor-1/stats", http.StatusOK},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.code, w.Code)
		}
	}
}
