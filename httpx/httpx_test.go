/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/catalog"
	"dirpx.dev/pyerr/explain"
	"dirpx.dev/pyerr/httpx"
	"dirpx.dev/pyerr/locale"
	"dirpx.dev/pyerr/mapper"
	"dirpx.dev/pyerr/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	h := httpx.NewHandler(service.New(nil, nil), m, httpx.WithLogger(zaptest.NewLogger(t)))
	srv := httptest.NewServer(h.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+httpx.ExplainPath, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-1")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestExplain_OK(t *testing.T) {
	srv := newServer(t)
	msg := "NameError: name 'foo' is not defined"
	resp := post(t, srv, `{"message": "NameError: name 'foo' is not defined", "locale": "es"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got apis.ExplanationView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	rec, ok, err := explain.Classify(msg)
	require.NoError(t, err)
	require.True(t, ok)
	want, err := catalog.Default().Render(rec, locale.Spanish)
	require.NoError(t, err)

	assert.True(t, got.Explained)
	assert.Equal(t, "name", got.Kind)
	assert.Equal(t, "es", got.Locale)
	assert.Equal(t, map[string]string{"missingReference": "foo"}, got.Fields)
	assert.Equal(t, want.Header, got.Header)
	assert.Equal(t, want.Details, got.Details)
}

func TestExplain_DefaultLocale(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, `{"message": "AssertionError: 4 != 8"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got apis.ExplanationView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "es", got.Locale)
	assert.Equal(t, "Al realizar una comparación, se esperaba obtener el valor `8`, pero se obtuvo el valor `4`", got.Header)
}

func TestExplain_NoMatch(t *testing.T) {
	srv := newServer(t)
	resp := post(t, srv, `{"message": "IndexError: pop from empty list", "locale": "en"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got apis.ExplanationView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, apis.ExplanationView{Explained: false, Locale: "en"}, got)
}

func TestExplain_Failures(t *testing.T) {
	srv := newServer(t)
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"not json", `nope`, http.StatusBadRequest, "invalid"},
		{"array", `[]`, http.StatusBadRequest, "invalid"},
		{"missing message", `{"locale": "es"}`, http.StatusBadRequest, "invalid"},
		{"message type", `{"message": 1}`, http.StatusBadRequest, "invalid"},
		{"invalid locale", `{"message": "AssertionError: 1 != 2", "locale": "!!"}`, http.StatusBadRequest, "invalid_locale"},
		{"unknown locale", `{"message": "AssertionError: 1 != 2", "locale": "fr"}`, http.StatusNotFound, "unknown_locale"},
		{"malformed input", `{"message": "TypeError: 'int' object is not callable"}`, http.StatusInternalServerError, "malformed_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var got struct {
				apis.ErrorView
				Correlation string `json:"correlation"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, "req-1", got.Correlation)
		})
	}
}

func TestExplain_MethodNotAllowed(t *testing.T) {
	srv := newServer(t)
	resp, err := srv.Client().Get(srv.URL + httpx.ExplainPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
}

func TestWriter_OverriddenStatus(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride("unknown_locale", http.StatusUnprocessableEntity))
	require.NoError(t, err)
	h := httpx.NewHandler(service.New(nil, nil), m)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, httpx.ExplainPath, strings.NewReader(`{"message": "AssertionError: 1 != 2", "locale": "pt"}`))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
