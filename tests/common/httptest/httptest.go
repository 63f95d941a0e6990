//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON and attaches a bearer token when one is given.
func PerformRequest(t *testing.T, handler http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(jsonBody)
	}
	return serve(handler, method, path, reader, body != nil, authToken, nil)
}

// PerformRawRequest sends raw as the request body untouched, for malformed payloads.
func PerformRawRequest(t *testing.T, handler http.Handler, method, path, raw, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(handler, method, path, strings.NewReader(raw), true, authToken, nil)
}

// PerformRequestWithHeaders is PerformRequest without a body plus extra request headers.
func PerformRequestWithHeaders(t *testing.T, handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(handler, method, path, http.NoBody, false, "", headers)
}

func serve(handler http.Handler, method, path string, body io.Reader, isJSON bool, authToken string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
