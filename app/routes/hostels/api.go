package hostels

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetHostelsAPI returns the caller's hostels
func GetHostelsAPI(c *fiber.Ctx, db *sql.DB) error {
	landlordID := c.Locals("user_id").(string)

	hostels, err := database.GetHostelsByLandlord(db, landlordID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostels")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    hostels,
	})
}

// GetHostelByIDAPI returns a specific hostel by ID
func GetHostelByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Params("id")

	hostel, err := database.GetHostelByID(db, hostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}

	services, err := database.GetServicesForHostel(db, hostelID)
	if err == nil {
		hostel.Services = services
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    hostel,
	})
}

// CreateHostelAPI creates a new hostel owned by the caller
func CreateHostelAPI(c *fiber.Ctx, db *sql.DB) error {
	var hostel models.Hostel
	if err := c.BodyParser(&hostel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	hostel.LandlordID = c.Locals("user_id").(string)

	if hostel.Name == "" || hostel.Address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	if err := database.CreateHostel(db, &hostel); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create hostel")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    hostel,
		"message": "Hostel created successfully",
	})
}

// UpdateHostelAPI updates an existing hostel
func UpdateHostelAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Params("id")

	existing, err := database.GetHostelByID(db, hostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if existing.LandlordID != c.Locals("user_id").(string) {
		return fiber.NewError(fiber.StatusForbidden, "Not your hostel")
	}

	var hostel models.Hostel
	if err := c.BodyParser(&hostel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	hostel.ID = hostelID

	if err := database.UpdateHostel(db, &hostel); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update hostel")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hostel updated successfully",
	})
}

// DeleteHostelAPI soft deletes a hostel
func DeleteHostelAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Params("id")

	existing, err := database.GetHostelByID(db, hostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if existing.LandlordID != c.Locals("user_id").(string) {
		return fiber.NewError(fiber.StatusForbidden, "Not your hostel")
	}

	if err := database.DeleteHostel(db, hostelID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete hostel")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hostel deleted successfully",
	})
}

// UploadHostelImageAPI uploads a hostel cover image to object storage
func UploadHostelImageAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Params("id")

	hostel, err := database.GetHostelByID(db, hostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if hostel.LandlordID != c.Locals("user_id").(string) {
		return fiber.NewError(fiber.StatusForbidden, "Not your hostel")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	url, err := services.UploadFile(c.Context(), file)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	hostel.ImageURL = url
	if err := database.UpdateHostel(db, hostel); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image URL")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"url": url},
	})
}

// AttachServiceAPI enables a service for a hostel
func AttachServiceAPI(c *fiber.Ctx, db *sql.DB) error {
	type AttachRequest struct {
		ServiceID string `json:"service_id" validate:"required,uuid"`
	}

	hostelID := c.Params("id")

	var req AttachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := database.GetServiceByID(db, req.ServiceID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch service")
	}

	if err := database.AttachServiceToHostel(db, hostelID, req.ServiceID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to attach service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service attached successfully",
	})
}

// DetachServiceAPI disables a service for a hostel
func DetachServiceAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Params("id")
	serviceID := c.Params("serviceId")

	if err := database.DetachServiceFromHostel(db, hostelID, serviceID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to detach service")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service detached successfully",
	})
}
