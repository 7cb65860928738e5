package admin

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime int    `json:"uptime"`
	Routes int    `json:"routes"`
	Logs   int    `json:"logs"`
}

// Acknowledgments returned by POST /api/routes.
const (
	MsgRouteCreated = "Route created"
	MsgRouteUpdated = "Route updated"
)
