package models

import (
	"time"

	"github.com/cityair/cityair/internal/provider/resilience"
)

// HealthStatus represents the health status of the service or a provider.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "OK"
	HealthStatusDegraded HealthStatus = "DEGRADED"
	HealthStatusFail     HealthStatus = "FAIL"
)

// Health represents the health status of the service.
type Health struct {
	Status  HealthStatus   `json:"status"`
	Time    time.Time      `json:"time"`
	Details map[string]any `json:"details,omitempty"`
}

// SystemStatus represents the overall system status.
type SystemStatus struct {
	Status    HealthStatus     `json:"status"`
	Time      time.Time        `json:"time"`
	Providers []ProviderStatus `json:"providers"`
}

// ProviderStatus represents the status of an upstream provider.
type ProviderStatus struct {
	Provider      string       `json:"provider"`
	Status        HealthStatus `json:"status"`
	CircuitState  string       `json:"circuitState"`
	LastSuccessAt *time.Time   `json:"lastSuccessAt,omitempty"`
	LastFailureAt *time.Time   `json:"lastFailureAt,omitempty"`
	Message       *string      `json:"message,omitempty"`
}

// NewProviderStatus maps registry health onto the API representation.
func NewProviderStatus(health *resilience.ProviderHealth) ProviderStatus {
	status := HealthStatusOK
	switch {
	case health.IsUnhealthy():
		status = HealthStatusFail
	case health.IsDegraded():
		status = HealthStatusDegraded
	}

	ps := ProviderStatus{
		Provider:      health.Name,
		Status:        status,
		CircuitState:  health.CircuitState.String(),
		LastSuccessAt: health.LastSuccessAt,
		LastFailureAt: health.LastFailureAt,
	}
	if health.LastError != "" {
		msg := health.LastError
		ps.Message = &msg
	}
	return ps
}

// NewSystemStatus builds the overall status from all registered providers.
// The system is DEGRADED when any provider circuit is not closed; it only
// reports FAIL when every provider circuit is open.
func NewSystemStatus(registry *resilience.Registry) SystemStatus {
	all := registry.GetAllHealth()

	providers := make([]ProviderStatus, 0, len(all))
	unhealthy := 0
	degraded := 0
	for _, h := range all {
		providers = append(providers, NewProviderStatus(h))
		if h.IsUnhealthy() {
			unhealthy++
		}
		if h.IsDegraded() {
			degraded++
		}
	}

	status := HealthStatusOK
	switch {
	case len(all) > 0 && unhealthy == len(all):
		status = HealthStatusFail
	case unhealthy > 0 || degraded > 0:
		status = HealthStatusDegraded
	}

	return SystemStatus{
		Status:    status,
		Time:      time.Now().UTC(),
		Providers: providers,
	}
}
