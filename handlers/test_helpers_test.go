package handlers

import (
	"io"
	"net/http/httptest"

	"law_landing_go/config"

	"github.com/labstack/echo/v4"
)

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.AppURL = "https://example.com/"
	c.Set("config", cfg)

	return e, c, rec
}
