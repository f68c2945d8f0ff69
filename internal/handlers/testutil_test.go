package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/printguard/printguard-api/internal/advisory"
	"github.com/printguard/printguard-api/internal/config"
	"github.com/printguard/printguard-api/internal/credentials"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/routes"
	"github.com/printguard/printguard-api/internal/storage"
	"github.com/printguard/printguard-api/internal/store"
)

// stubAdvisor responde sempre com o fallback, como um colaborador fora do ar
type stubAdvisor struct{}

func (stubAdvisor) Diagnose(_ context.Context, _ models.Printer, _ string) advisory.Diagnosis {
	return advisory.Diagnosis{
		Diagnosis:         advisory.FallbackDiagnosis,
		RecommendedAction: advisory.FallbackAction,
		SuggestedParts:    []string{},
	}
}

func (stubAdvisor) PreventiveReport(_ context.Context, _ []models.Printer) string {
	return advisory.FallbackReport
}

type testServer struct {
	router *gin.Engine
	store  *store.Store
	creds  *credentials.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{ServerPort: "0", JWTSecret: "test-secret"}
	kv := storage.NewMemoryStore()
	ctx := context.Background()

	st, err := store.New(ctx, kv)
	require.NoError(t, err)

	creds, err := credentials.New(ctx, kv)
	require.NoError(t, err)

	r := gin.New()
	routes.RegisterRoutes(r, st, creds, stubAdvisor{}, cfg)

	return &testServer{router: r, store: st, creds: creds}
}

func (ts *testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login autentica com a credencial semeada e devolve o token
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	w := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@printguard.com",
		"password": "123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
