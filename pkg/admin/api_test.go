package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/bffd/bffd/pkg/requestlog"
	"github.com/bffd/bffd/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*API, http.Handler) {
	t.Helper()
	api := New(route.NewRegistry(), requestlog.NewMemoryStore(10))
	return api, api.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSaveRoute_CreateThenList(t *testing.T) {
	t.Parallel()
	_, h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/api/routes", `{"id":99,"path":"/it","method":"GET","description":null}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `"Route created"`, rec.Body.String())

	rec = doRequest(t, h, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var routes []route.Route
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, 99, routes[0].ID)
	assert.Equal(t, "/it", routes[0].Path)
	assert.Equal(t, route.ModeHandled, routes[0].Mode)
}

func TestSaveRoute_UpdateByID(t *testing.T) {
	t.Parallel()
	api, h := newTestAPI(t)

	doRequest(t, h, http.MethodPost, "/api/routes", `{"id":1,"path":"/a","method":"GET"}`)
	doRequest(t, h, http.MethodPost, "/api/routes", `{"id":2,"path":"/b","method":"GET"}`)

	rec := doRequest(t, h, http.MethodPost, "/api/routes", `{"id":1,"path":"/a2","method":"POST","mode":"proxy","target_path":"/up/a2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"Route updated"`, rec.Body.String())

	routes := api.routes.List()
	require.Len(t, routes, 2)
	assert.Equal(t, "/a2", routes[0].Path)
	assert.Equal(t, route.ModeProxy, routes[0].Mode)
	require.NotNil(t, routes[0].TargetPath)
	assert.Equal(t, "/up/a2", *routes[0].TargetPath)
}

func TestSaveRoute_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code int
		err  string
	}{
		{"malformed json", `{"id":`, http.StatusBadRequest, "invalid_json"},
		{"empty body", ``, http.StatusBadRequest, "invalid_json"},
		{"wrong type", `{"id":"one","path":"/a","method":"GET"}`, http.StatusUnprocessableEntity, "invalid_route"},
		{"unknown mode", `{"id":1,"path":"/a","method":"GET","mode":"mirror"}`, http.StatusUnprocessableEntity, "invalid_route"},
		{"missing id", `{"path":"/a","method":"GET"}`, http.StatusUnprocessableEntity, "invalid_route"},
		{"missing path", `{"id":1,"method":"GET"}`, http.StatusUnprocessableEntity, "invalid_route"},
		{"missing method", `{"id":1,"path":"/a"}`, http.StatusUnprocessableEntity, "invalid_route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			api, h := newTestAPI(t)

			rec := doRequest(t, h, http.MethodPost, "/api/routes", tt.body)
			assert.Equal(t, tt.code, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.err, resp["error"])
			assert.Equal(t, 0, api.routes.Count())
		})
	}
}

func TestListRoutes_EmptyIsArray(t *testing.T) {
	t.Parallel()
	_, h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListLogs(t *testing.T) {
	t.Parallel()
	api, h := newTestAPI(t)

	for i := 0; i < 5; i++ {
		api.logs.Log(&requestlog.Entry{Method: "GET", Path: "/p" + strconv.Itoa(i), Status: 200})
	}

	t.Run("all oldest first", func(t *testing.T) {
		t.Parallel()
		rec := doRequest(t, h, http.MethodGet, "/api/logs", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []requestlog.Entry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 5)
		assert.Equal(t, "/p0", entries[0].Path)
		assert.Equal(t, "/p4", entries[4].Path)
	})

	t.Run("limit returns newest", func(t *testing.T) {
		t.Parallel()
		rec := doRequest(t, h, http.MethodGet, "/api/logs?limit=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []requestlog.Entry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "/p3", entries[0].Path)
		assert.Equal(t, "/p4", entries[1].Path)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()
		rec := doRequest(t, h, http.MethodGet, "/api/logs?limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()
	api, h := newTestAPI(t)
	api.routes.AddOrUpdate(route.Route{ID: 1, Method: "GET", Path: "/a"})
	api.logs.Log(&requestlog.Entry{Method: "GET", Path: "/a"})

	rec := doRequest(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Routes)
	assert.Equal(t, 1, resp.Logs)
}
