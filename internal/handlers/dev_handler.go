package handlers

import (
	"net/http"

	"budgetd/internal/dto"
	"budgetd/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{sampleDataService: sampleDataService}
}

// SeedSampleData populates an empty database with generated budget data
// @Summary Seed sample data (development only)
// @Description Populate an empty database with sample accounts, categories and several months of transactions. A non-empty database is left untouched.
// @Tags Development
// @Produce json
// @Success 200 {object} dto.MessageResponse "Seeding finished"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dev/seed [post]
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	if err := h.sampleDataService.Seed(); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sample data seeded"})
}
