package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// GetServicesAPI lists the service catalog
func GetServicesAPI(c *fiber.Ctx, db *sql.DB) error {
	services, err := database.GetAllServices(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch services")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    services,
	})
}

// CreateServiceAPI adds a new service to the catalog
func CreateServiceAPI(c *fiber.Ctx, db *sql.DB) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if service.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Service name is required")
	}
	switch service.ChargingMethod {
	case models.ChargePerUnit, models.ChargePerPerson, models.ChargeFlat:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid charging method")
	}

	if err := database.CreateService(db, &service); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create service")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    service,
		"message": "Service created successfully",
	})
}

// UpdateServiceAPI renames a service or changes its charging method
func UpdateServiceAPI(c *fiber.Ctx, db *sql.DB) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	service.ID = c.Params("id")

	if err := database.UpdateService(db, &service); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    service,
		"message": "Service updated successfully",
	})
}

// DeleteServiceAPI soft-deletes a service from the catalog
func DeleteServiceAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteService(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service deleted successfully",
	})
}

type tariffRequest struct {
	HostelID      string          `json:"hostel_id"`
	ServiceID     string          `json:"service_id"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Unit          string          `json:"unit"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   string          `json:"effective_to"`
}

// CreateTariffAPI opens a new tariff window for a service at a hostel
func CreateTariffAPI(c *fiber.Ctx, db *sql.DB) error {
	var req tariffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.HostelID == "" || req.ServiceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Hostel ID and service ID are required")
	}
	if req.UnitCost.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Unit cost must not be negative")
	}

	hostel, err := database.GetHostelByID(db, req.HostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if hostel.LandlordID != c.Locals("user_id").(string) {
		return fiber.NewError(fiber.StatusForbidden, "You do not own this hostel")
	}

	effectiveFrom := time.Now()
	if req.EffectiveFrom != "" {
		effectiveFrom, err = time.Parse("2006-01-02", req.EffectiveFrom)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid effective_from date, expected YYYY-MM-DD")
		}
	}

	cost := &models.ServiceCost{
		HostelID:      req.HostelID,
		ServiceID:     req.ServiceID,
		UnitCost:      req.UnitCost,
		Unit:          req.Unit,
		EffectiveFrom: effectiveFrom,
	}
	if req.EffectiveTo != "" {
		effectiveTo, err := time.Parse("2006-01-02", req.EffectiveTo)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid effective_to date, expected YYYY-MM-DD")
		}
		if !effectiveTo.After(effectiveFrom) {
			return fiber.NewError(fiber.StatusBadRequest, "effective_to must be after effective_from")
		}
		cost.EffectiveTo = &effectiveTo
	}

	if err := database.CreateServiceCost(db, cost); err != nil {
		if errors.Is(err, database.ErrTariffOverlap) {
			return fiber.NewError(fiber.StatusBadRequest, "Tariff window overlaps an existing tariff")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tariff")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    cost,
		"message": "Tariff created successfully",
	})
}

// GetTariffsAPI lists all tariff windows for a hostel
func GetTariffsAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Query("hostel_id")
	if hostelID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "hostel_id query parameter is required")
	}

	costs, err := database.GetServiceCosts(db, hostelID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tariffs")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    costs,
	})
}
