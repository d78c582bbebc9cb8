package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthResponse represents the health check response of the application
type HealthResponse struct {
	Status      HealthStatus `json:"status"`
	Application string       `json:"application"`
	Uptime      string       `json:"uptime"`
}
