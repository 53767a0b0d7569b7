package coinbase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base64("otterly-secret-key"), shared across the endpoint tests
const testSecret = "b3R0ZXJseS1zZWNyZXQta2V5"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", testSecret, "test-passphrase",
		WithBaseURL(srv.URL),
		WithRateLimit(1000, 1000),
	)
}

func TestSign(t *testing.T) {
	sig, err := sign(testSecret, "1641035400.123", "GET", "/accounts", "")
	require.NoError(t, err)
	assert.Equal(t, "1YH4NxHLntAva5RxZnqfApNFuXJFHTKdmobDOtAPNzI=", sig)

	sig, err = sign(testSecret, "1641035400.123", "POST", "/orders", `{"product_id":"BTC-USD","side":"buy"}`)
	require.NoError(t, err)
	assert.Equal(t, "oOtmKUBCIJV5wNgJYJfw5J6lLmaM5YKk/egckaroMhU=", sig)
}

func TestSignBadSecret(t *testing.T) {
	_, err := sign("not-base64!!!", "1641035400.123", "GET", "/accounts", "")
	assert.Error(t, err)
}

func TestRequestCarriesAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("CB-ACCESS-KEY"))
		assert.Equal(t, "test-passphrase", r.Header.Get("CB-ACCESS-PASSPHRASE"))
		assert.NotEmpty(t, r.Header.Get("CB-ACCESS-TIMESTAMP"))

		// the signature must verify against the request the server actually saw
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		want, err := sign(testSecret, r.Header.Get("CB-ACCESS-TIMESTAMP"), r.Method, r.URL.RequestURI(), string(body))
		require.NoError(t, err)
		assert.Equal(t, want, r.Header.Get("CB-ACCESS-SIGN"))

		w.Write([]byte(`{}`))
	})

	_, err := client.Fees().Get(context.Background())
	require.NoError(t, err)
}

func TestSignedPathIncludesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "BTC-USD", r.URL.Query().Get("product_id"))

		want, err := sign(testSecret, r.Header.Get("CB-ACCESS-TIMESTAMP"), r.Method, r.URL.RequestURI(), "")
		require.NoError(t, err)
		assert.Equal(t, want, r.Header.Get("CB-ACCESS-SIGN"))

		w.Write([]byte(`[]`))
	})

	_, err := client.Orders().List(context.Background(), ListOrdersReq{ProductID: "BTC-USD"})
	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrInvalidRequest},
		{http.StatusUnauthorized, ErrInvalidKey},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}

	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"something went wrong"}`))
		})

		_, err := client.Accounts().List(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, tc.status, apiErr.StatusCode)
		assert.Equal(t, "something went wrong", apiErr.Message)
	}
}

func TestErrorWithoutMessageBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream timeout`))
	})

	_, err := client.Accounts().List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream timeout", apiErr.Message)
}

func TestDecodeFailureIsNotSilent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.Accounts().List(context.Background())
	assert.ErrorContains(t, err, "decode response")
}

func TestRateLimiterHonorsContext(t *testing.T) {
	client := New("k", testSecret, "p", WithRateLimit(0.001, 1))
	// exhaust the single burst token
	client.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Fees().Get(ctx)
	assert.Error(t, err)
}
