package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bffd/bffd/pkg/httputil"
	"github.com/bffd/bffd/pkg/route"
)

// handleHealth handles GET /api/health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status: "ok",
		Uptime: a.Uptime(),
		Routes: a.routes.Count(),
		Logs:   a.logs.Count(),
	})
}

// handleListRoutes handles GET /api/routes.
func (a *API) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, a.routes.List())
}

// routePayload mirrors route.Route with pointers so that missing required
// fields can be told apart from zero values.
type routePayload struct {
	ID          *int       `json:"id"`
	Path        *string    `json:"path"`
	Method      *string    `json:"method"`
	Mode        route.Mode `json:"mode"`
	TargetPath  *string    `json:"target_path"`
	Description *string    `json:"description"`
}

func (p *routePayload) toRoute() (route.Route, error) {
	switch {
	case p.ID == nil:
		return route.Route{}, errors.New("missing field `id`")
	case p.Path == nil:
		return route.Route{}, errors.New("missing field `path`")
	case p.Method == nil:
		return route.Route{}, errors.New("missing field `method`")
	}
	r := route.Route{
		ID:         *p.ID,
		Path:       *p.Path,
		Method:     *p.Method,
		Mode:       p.Mode,
		TargetPath: p.TargetPath,
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	return r, nil
}

// handleSaveRoute handles POST /api/routes.
// It replaces a route with the same id in place (200) or appends it (201).
func (a *API) handleSaveRoute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRouteBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
			return
		}
		httputil.WriteBadRequest(w, "invalid_request", err.Error())
		return
	}

	var payload routePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || len(body) == 0 {
			httputil.WriteBadRequest(w, "invalid_json", ErrMsgInvalidJSON)
			return
		}
		a.log.Debug("rejected route payload", "error", err)
		httputil.WriteError(w, http.StatusUnprocessableEntity, "invalid_route", ErrMsgInvalidRoute+": "+err.Error())
		return
	}

	rt, err := payload.toRoute()
	if err != nil {
		httputil.WriteError(w, http.StatusUnprocessableEntity, "invalid_route", ErrMsgInvalidRoute+": "+err.Error())
		return
	}

	if a.routes.AddOrUpdate(rt) {
		a.log.Info("route created", "id", rt.ID, "method", rt.Method, "path", rt.Path, "mode", rt.Mode)
		httputil.WriteCreated(w, MsgRouteCreated)
		return
	}
	a.log.Info("route updated", "id", rt.ID, "method", rt.Method, "path", rt.Path, "mode", rt.Mode)
	httputil.WriteOK(w, MsgRouteUpdated)
}

// handleListLogs handles GET /api/logs.
func (a *API) handleListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteBadRequest(w, "invalid_limit", ErrMsgInvalidLimit)
			return
		}
		limit = n
	}
	httputil.WriteOK(w, a.logs.Tail(limit))
}
