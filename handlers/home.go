package handlers

import (
	"net/http"
	"strings"

	"law_landing_go/config"
	"law_landing_go/content"
	"law_landing_go/services"
	"law_landing_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page with its navbar, services grid and
// trust counters
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	site := content.Current()

	page := services.BuildLandingPage(site, services.LandingOptionsFromConfig(cfg))
	seo := LandingSEO(site, cfg)

	ctx := c.Request().Context()
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return pages.Landing(seo, page).Render(ctx, c.Response().Writer)
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	site := content.Current()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"brand":   site.Brand,
		"metrics": len(site.Trust.Metrics),
	})
}

func baseURL(cfg *config.Config) string {
	return strings.TrimRight(cfg.AppURL, "/")
}
