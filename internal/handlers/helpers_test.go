package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benx421/catalog/internal/auth"
	"github.com/benx421/catalog/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

// handlerFixture bundles a Handler with the mocks behind each service port
type handlerFixture struct {
	catalog   *mocks.MockCataloger
	discounts *mocks.MockDiscounter
	stats     *mocks.MockAggregator
	queries   *mocks.MockQuerier
	bulk      *mocks.MockBulkCreator
	accounts  *mocks.MockAccountManager
	resets    *mocks.MockPasswordResetter
	tokens    *auth.TokenManager
	handler   *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		catalog:   mocks.NewMockCataloger(t),
		discounts: mocks.NewMockDiscounter(t),
		stats:     mocks.NewMockAggregator(t),
		queries:   mocks.NewMockQuerier(t),
		bulk:      mocks.NewMockBulkCreator(t),
		accounts:  mocks.NewMockAccountManager(t),
		resets:    mocks.NewMockPasswordResetter(t),
		tokens:    auth.NewTokenManager("test-secret", "catalog", time.Hour),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(
		f.catalog, f.discounts, f.stats, f.queries, f.bulk,
		f.accounts, f.resets, nil, f.tokens, logger,
	)
	return f
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
