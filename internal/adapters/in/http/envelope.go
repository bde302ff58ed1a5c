package http

import (
	"github.com/labstack/echo/v4"
)

// Every response body is an object carrying success and message next to its payload.

func success(message string, payload echo.Map) echo.Map {
	body := echo.Map{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

func failure(message string) echo.Map {
	return echo.Map{"success": false, "message": message}
}

func respond(c echo.Context, status int, message string, payload echo.Map) error {
	return c.JSON(status, success(message, payload))
}
