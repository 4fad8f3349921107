package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler"
	pgRepo "github.com/gustavo-ramos/newsfeed-backend/internal/adapter/repository/postgres"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/auth"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/database"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/middleware"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/server"
	authUC "github.com/gustavo-ramos/newsfeed-backend/internal/usecase/auth"
	"github.com/gustavo-ramos/newsfeed-backend/internal/usecase/news"
	"github.com/gustavo-ramos/newsfeed-backend/internal/usecase/preference"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testCountry    = "in"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	News       *stubNewsProvider
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Run migrations
	migrationsPath := getMigrationsPath()
	err = database.RunMigrations(ctx, pool, migrationsPath)
	require.NoError(t, err)

	// Initialize repositories
	userRepo := pgRepo.NewUserRepo(pool)

	// Initialize infrastructure services
	jwtSvc := auth.NewJWTService(testJWTSecret, time.Hour)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	// Stub news provider and cache (avoids external API and Redis dependencies)
	stubProvider := &stubNewsProvider{
		payload: json.RawMessage(`{"status":"ok","totalResults":1,"articles":[{"title":"stub headline"}]}`),
	}
	stubCache := newStubNewsCache()

	// Initialize use cases
	authSvc := authUC.NewService(userRepo, jwtSvc, passwordHasher)
	preferenceSvc := preference.NewService(userRepo)
	newsSvc := news.NewService(userRepo, stubProvider, stubCache, testCountry, 5*time.Minute)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authSvc)
	preferenceHandler := handler.NewPreferenceHandler(preferenceSvc)
	newsHandler := handler.NewNewsHandler(newsSvc)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Create router
	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		PreferenceHandler: preferenceHandler,
		NewsHandler:       newsHandler,
		AuthMiddleware:    authMiddleware,
		Logger:            logger,
		Environment:       "test",
	})

	// Create test server
	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		News:      stubProvider,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// signupAndLogin registers a fresh user and returns its access token.
func (app *TestApp) signupAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()

	resp, err := app.post("/users/signup", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.post("/users/login", map[string]any{
		"email":    email,
		"password": password,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Token string `json:"token"`
	}
	parseResponse(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

// Stub news provider (to avoid calling the real API in e2e tests)

type stubNewsProvider struct {
	mu        sync.Mutex
	payload   json.RawMessage
	LastQuery string
	Calls     int
}

func (s *stubNewsProvider) TopHeadlines(ctx context.Context, country, query string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastQuery = query
	s.Calls++
	return s.payload, nil
}

// stubNewsCache is an in-memory stand-in for the Redis cache.
type stubNewsCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newStubNewsCache() *stubNewsCache {
	return &stubNewsCache{entries: make(map[string][]byte)}
}

func (s *stubNewsCache) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payload, ok := s.entries[key]; ok {
		return payload, nil
	}
	return nil, nil
}

func (s *stubNewsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
