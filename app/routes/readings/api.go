package readings

import (
	"database/sql"
	"errors"

	"github.com/TungTV17/HostelFinder-sub000/app/billing"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetReadingsAPI lists meter readings for a room
func GetReadingsAPI(c *fiber.Ctx, db *sql.DB) error {
	roomID := c.Query("room_id")
	if roomID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "room_id query parameter is required")
	}

	readings, err := database.GetReadingsForRoom(db, roomID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch meter readings")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    readings,
	})
}

// CreateReadingAPI records a meter reading for a room's metered service
func CreateReadingAPI(c *fiber.Ctx, db *sql.DB) error {
	var reading models.MeterReading
	if err := c.BodyParser(&reading); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if reading.RoomID == "" || reading.ServiceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Room ID and service ID are required")
	}
	if reading.BillingMonth < 1 || reading.BillingMonth > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "Billing month must be between 1 and 12")
	}
	if reading.BillingYear < 2000 {
		return fiber.NewError(fiber.StatusBadRequest, "Billing year is out of range")
	}
	if reading.Reading < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Reading must not be negative")
	}

	if err := billing.RecordReading(db, &reading); err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidReading):
			return fiber.NewError(fiber.StatusBadRequest, "Reading is lower than the previous period's reading")
		case errors.Is(err, billing.ErrDuplicateReading):
			return fiber.NewError(fiber.StatusBadRequest, "A reading already exists for this room, service and period")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record meter reading")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    reading,
		"message": "Meter reading recorded successfully",
	})
}

// UpdateReadingAPI corrects a reading no invoice has consumed yet
func UpdateReadingAPI(c *fiber.Ctx, db *sql.DB) error {
	var body struct {
		Reading float64 `json:"reading"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Reading < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Reading must not be negative")
	}

	reading, err := billing.EditReading(db, c.Params("id"), body.Reading)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrReadingBilled):
			return fiber.NewError(fiber.StatusBadRequest, "Reading has already been billed and cannot be edited")
		case errors.Is(err, billing.ErrInvalidReading):
			return fiber.NewError(fiber.StatusBadRequest, "Reading is lower than the previous period's reading")
		case err == sql.ErrNoRows:
			return fiber.NewError(fiber.StatusNotFound, "Meter reading not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update meter reading")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reading,
		"message": "Meter reading updated successfully",
	})
}
