//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/benx421/catalog/internal/config"
	"github.com/benx421/catalog/internal/db"
	"github.com/benx421/catalog/internal/handlers"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	Token    string
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state and a
// registered, logged-in account. Set RUN_INTEGRATION_TESTS=true and point the
// DB_* variables at a migrated database to run these.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("set RUN_INTEGRATION_TESTS=true to run integration tests")
	}

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to database")

	resetTestData(t, database)

	router := handlers.NewRouter(database, cfg, logger)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
	ts.Token = ts.registerAndLogin(t)

	return ts
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE idempotency_keys CASCADE;
		TRUNCATE TABLE password_resets CASCADE;
		TRUNCATE TABLE products CASCADE;
		TRUNCATE TABLE users CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

func (ts *TestServer) registerAndLogin(t *testing.T) string {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/register/", map[string]any{
		"username":  "integration",
		"email":     "integration@example.com",
		"password":  "sturdy passphrase",
		"password2": "sturdy passphrase",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ts.Do(t, http.MethodPost, "/login/", map[string]any{
		"username": "integration",
		"password": "sturdy passphrase",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	token, ok := body["token"].(string)
	require.True(t, ok, "login response missing token")
	return token
}

// Do sends a JSON request, attaching the bearer token when one is given.
func (ts *TestServer) Do(t *testing.T, method, path string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL(path), body)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// DoWithKey sends a JSON request carrying an Idempotency-Key header.
func (ts *TestServer) DoWithKey(t *testing.T, method, path string, payload any, token, idempotencyKey string) *http.Response {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL(path), bytes.NewReader(raw))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// CreateProduct posts a product with the session token and returns its id.
func (ts *TestServer) CreateProduct(t *testing.T, name string, price int64, description string) string {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/products/", map[string]any{
		"name":        name,
		"price":       price,
		"description": description,
	}, ts.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	id, ok := body["id"].(string)
	require.True(t, ok, "create response missing id")
	return id
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}
