package tenants

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetTenantsAPI lists tenants, optionally filtered by a search term
func GetTenantsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	tenants, err := database.SearchTenants(db, search, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tenants")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tenants,
	})
}

// GetTenantByIDAPI returns a single tenant
func GetTenantByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	tenantID := c.Params("id")

	tenant, err := database.GetTenantByID(db, tenantID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tenant")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tenant,
	})
}

// CreateTenantAPI registers a new tenant record
func CreateTenantAPI(c *fiber.Ctx, db *sql.DB) error {
	var tenant models.Tenant
	if err := c.BodyParser(&tenant); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if tenant.FullName == "" || tenant.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Full name and phone are required")
	}

	if err := database.CreateTenant(db, &tenant); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tenant")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    tenant,
		"message": "Tenant created successfully",
	})
}

type moveInRequest struct {
	TenantID   string `json:"tenant_id"`
	RoomID     string `json:"room_id"`
	MoveInDate string `json:"move_in_date"`
}

// MoveInAPI opens a tenancy for a tenant in a room
func MoveInAPI(c *fiber.Ctx, db *sql.DB) error {
	var req moveInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.TenantID == "" || req.RoomID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tenant ID and room ID are required")
	}

	moveIn := time.Now()
	if req.MoveInDate != "" {
		parsed, err := time.Parse("2006-01-02", req.MoveInDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid move-in date, expected YYYY-MM-DD")
		}
		moveIn = parsed
	}

	tenancy := &models.RoomTenancy{
		TenantID:   req.TenantID,
		RoomID:     req.RoomID,
		MoveInDate: moveIn,
	}
	if err := database.MoveTenantIn(db, tenancy); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    tenancy,
		"message": "Tenant moved in successfully",
	})
}

type moveOutRequest struct {
	TenantID    string `json:"tenant_id"`
	RoomID      string `json:"room_id"`
	MoveOutDate string `json:"move_out_date"`
}

// MoveOutAPI closes the tenant's open tenancy in the room
func MoveOutAPI(c *fiber.Ctx, db *sql.DB) error {
	var req moveOutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.TenantID == "" || req.RoomID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tenant ID and room ID are required")
	}

	moveOut := time.Now()
	if req.MoveOutDate != "" {
		parsed, err := time.Parse("2006-01-02", req.MoveOutDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid move-out date, expected YYYY-MM-DD")
		}
		moveOut = parsed
	}

	if err := database.MoveTenantOut(db, req.RoomID, req.TenantID, moveOut); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No active tenancy found for this tenant in this room")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to move tenant out")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Tenant moved out successfully",
	})
}
