package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	c, err := New(Options{BaseURL: baseURL, Timeout: timeout})
	require.NoError(t, err)
	return c
}

func respond(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNew_RequiresValidBaseURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "not a url"})
	assert.Error(t, err)

	c, err := New(Options{BaseURL: "http://localhost:8081/api/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/api", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.Timeout)
}

func TestAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		ct      string
		body    string
		wantMsg string
	}{
		{
			name:    "validation errors",
			status:  http.StatusBadRequest,
			ct:      "application/json",
			body:    `{"errors":{"nombre":["required"]}}`,
			wantMsg: "Errores de validación:\nnombre: required",
		},
		{
			name:    "validation errors keep backend order and join lists",
			status:  http.StatusBadRequest,
			ct:      "application/problem+json; charset=utf-8",
			body:    `{"title":"One or more validation errors occurred.","errors":{"Nombre":["a","b"],"EspecieId":"c"}}`,
			wantMsg: "Errores de validación:\nNombre: a, b\nEspecieId: c",
		},
		{
			name:    "message wins over title",
			status:  http.StatusConflict,
			ct:      "application/json",
			body:    `{"message":"No se puede eliminar","title":"Conflict"}`,
			wantMsg: "No se puede eliminar",
		},
		{
			name:    "title",
			status:  http.StatusNotFound,
			ct:      "application/json",
			body:    `{"title":"Not Found"}`,
			wantMsg: "Not Found",
		},
		{
			name:    "json without known fields uses default",
			status:  http.StatusInternalServerError,
			ct:      "application/json",
			body:    `{"detail":"x"}`,
			wantMsg: "Error 500: Internal Server Error",
		},
		{
			name:    "broken json uses default",
			status:  http.StatusBadGateway,
			ct:      "application/json",
			body:    `{not json`,
			wantMsg: "Error 502: Bad Gateway",
		},
		{
			name:    "plain text body",
			status:  http.StatusInternalServerError,
			ct:      "text/plain",
			body:    "boom",
			wantMsg: "boom",
		},
		{
			name:    "plain text truncated to 200 chars",
			status:  http.StatusInternalServerError,
			ct:      "text/html",
			body:    strings.Repeat("x", 250),
			wantMsg: strings.Repeat("x", 200),
		},
		{
			name:    "empty text body uses default",
			status:  http.StatusServiceUnavailable,
			ct:      "",
			body:    "",
			wantMsg: "Error 503: Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(respond(tt.status, tt.ct, tt.body))
			defer ts.Close()

			c := newTestClient(t, ts.URL, time.Second)
			_, err := c.Request(context.Background(), http.MethodPost, "/Animales", map[string]any{"nombre": ""})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
		})
	}
}

func TestRequest_SuccessDecodesByContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Especies", respond(http.StatusOK, "application/json; charset=utf-8", `[{"id":1,"nombre":"Perro"}]`))
	mux.HandleFunc("/ping", respond(http.StatusOK, "text/plain", "pong"))
	mux.HandleFunc("/empty", respond(http.StatusNoContent, "", ""))
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := newTestClient(t, ts.URL, time.Second)

	var out []struct {
		ID     int64  `json:"id"`
		Nombre string `json:"nombre"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/Especies", nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Perro", out[0].Nombre)

	resp, err := c.Request(context.Background(), http.MethodGet, "ping", nil)
	require.NoError(t, err)
	assert.False(t, resp.IsJSON())
	assert.Equal(t, "pong", resp.Text)

	// DELETE sin body no falla aunque se pida decode.
	require.NoError(t, c.DoJSON(context.Background(), http.MethodDelete, "/empty", nil, &out))

	// Texto cuando se esperaba JSON sí es error.
	err = c.DoJSON(context.Background(), http.MethodGet, "/ping", nil, &out)
	assert.Error(t, err)
}

func TestRequest_SendsHeadersAndBody(t *testing.T) {
	var gotCT, gotReqID, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-ID")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL, time.Second)
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/Duenos", map[string]any{"nombre": "Ana"}, nil))

	assert.Equal(t, "application/json", gotCT)
	assert.NotEmpty(t, gotReqID)
	assert.JSONEq(t, `{"nombre":"Ana"}`, gotBody)
}

func TestRequest_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL, 50*time.Millisecond)
	_, err := c.Request(context.Background(), http.MethodGet, "/Animales", nil)

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "La petición tardó demasiado. Por favor, verifica tu conexión.", err.Error())

	var ce *ConnectionError
	assert.False(t, errors.As(err, &ce))
}

func TestRequest_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL + "/api"
	ts.Close()

	c := newTestClient(t, base, time.Second)
	_, err := c.Request(context.Background(), http.MethodGet, "/Animales", nil)

	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "No se pudo conectar con el servidor. Verifica que el backend esté corriendo en "+base, err.Error())
}

func TestRequest_EachCallHasItsOwnDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(30 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	// 3 llamadas seguidas de 30ms con timeout de 80ms: ninguna debería expirar.
	c := newTestClient(t, ts.URL, 80*time.Millisecond)
	for i := 0; i < 3; i++ {
		_, err := c.Request(context.Background(), http.MethodGet, "/x", nil)
		require.NoError(t, err)
	}
}

func TestRequest_RecordsMetrics(t *testing.T) {
	ts := httptest.NewServer(respond(http.StatusBadRequest, "application/json", `{"message":"x"}`))
	defer ts.Close()

	reg := prometheus.NewRegistry()
	c, err := New(Options{BaseURL: ts.URL, Registerer: reg})
	require.NoError(t, err)

	// Un segundo client sobre el mismo registry no debe entrar en pánico.
	_, err = New(Options{BaseURL: ts.URL, Registerer: reg})
	require.NoError(t, err)

	_, _ = c.Request(context.Background(), http.MethodPut, "/Razas/1", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues(http.MethodPut, "api_error")))
}
