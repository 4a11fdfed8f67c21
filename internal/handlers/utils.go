package handlers

import (
	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseMonthParam reads a YYYY-MM path parameter into a Month value
func parseMonthParam(c echo.Context, name string) (models.Month, error) {
	return models.ParseMonth(c.Param(name))
}

// parseUUIDParam reads a UUID path parameter
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
