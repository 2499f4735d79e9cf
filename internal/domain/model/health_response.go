package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp       HealthStatus = "UP"
	StatusDown     HealthStatus = "DOWN"
	StatusDisabled HealthStatus = "DISABLED"
)

// ComponentHealthStatus is the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse aggregates the registry and the optional map cache. A disabled cache does
// not make the service unhealthy.
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Registry ComponentHealthStatus `json:"registry"`
	Cache    ComponentHealthStatus `json:"cache"`
}
