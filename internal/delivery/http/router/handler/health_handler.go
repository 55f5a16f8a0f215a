package handler

import (
	"net/http"

	"tnp/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Welcome answers the root path.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to TNP Backend"})
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"}, nil)
}
