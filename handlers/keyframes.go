package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"law_landing_go/config"
	"law_landing_go/content"
	"law_landing_go/services"

	"github.com/labstack/echo/v4"
)

// MetricKeyframesHandler returns the precomputed counter values of one trust
// metric. fps defaults to the configured counter rate.
func MetricKeyframesHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid metric index")
	}

	fps := cfg.CounterFPS
	if raw := c.QueryParam("fps"); raw != "" {
		fps, err = strconv.Atoi(raw)
		if err != nil || fps < 1 || fps > config.MaxCounterFPS {
			return echo.NewHTTPError(http.StatusBadRequest, "fps must be between 1 and "+strconv.Itoa(config.MaxCounterFPS))
		}
	}

	opts := services.LandingOptionsFromConfig(cfg)
	track, err := services.MetricKeyframes(content.Current(), index, fps, opts.Spring)
	if err != nil {
		if errors.Is(err, services.ErrMetricNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Metric not found")
		}
		c.Logger().Errorf("Failed to build keyframes: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build keyframes")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.JSON(http.StatusOK, track)
}
