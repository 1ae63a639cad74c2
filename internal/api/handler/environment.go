// Package handler provides HTTP handlers for the CityAir API.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/api/models"
	"github.com/cityair/cityair/internal/api/response"
	"github.com/cityair/cityair/internal/environment"
)

// EnvironmentHandler handles environment lookup endpoints.
type EnvironmentHandler struct {
	service *environment.Service
	logger  zerolog.Logger
}

// NewEnvironmentHandler creates a new EnvironmentHandler.
func NewEnvironmentHandler(service *environment.Service, logger zerolog.Logger) *EnvironmentHandler {
	return &EnvironmentHandler{
		service: service,
		logger:  logger,
	}
}

// GetEnvironment handles GET /environment?city= - merged weather and air
// quality for a city. Missing weather or air quality data degrades to an
// empty object rather than failing the request.
func (h *EnvironmentHandler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		response.BadRequest(w, r, "City parameter is required")
		return
	}

	report, err := h.service.Lookup(r.Context(), city)
	if err != nil {
		if errors.Is(err, environment.ErrCityNotFound) {
			response.NotFound(w, r, "City not found")
			return
		}

		h.logger.Error().Err(err).
			Str("city", city).
			Msg("environment lookup failed")
		response.BadGateway(w, r, "Unable to resolve city")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewEnvironmentReport(report))
}
