package invoices

import (
	"database/sql"
	"errors"
	"log"

	"github.com/TungTV17/HostelFinder-sub000/app/billing"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type generateInvoiceRequest struct {
	RoomID       string `json:"room_id"`
	BillingMonth int    `json:"billing_month"`
	BillingYear  int    `json:"billing_year"`
}

// GenerateMonthlyInvoiceAPI composes the invoice for a room's billing period
func GenerateMonthlyInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req generateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.RoomID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Room ID is required")
	}

	invoice, err := billing.GenerateMonthlyInvoice(db, req.RoomID, req.BillingMonth, req.BillingYear)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrDuplicateInvoice):
			return fiber.NewError(fiber.StatusBadRequest, "An invoice already exists for this room and period")
		case errors.Is(err, billing.ErrMissingReading):
			return fiber.NewError(fiber.StatusBadRequest, "A metered service has no reading for this period")
		case errors.Is(err, billing.ErrInvalidReading):
			return fiber.NewError(fiber.StatusBadRequest, "Meter reading for this period is lower than the previous one")
		case errors.Is(err, billing.ErrTariffNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "No tariff covers this billing period")
		case errors.Is(err, billing.ErrAmbiguousTariff):
			return fiber.NewError(fiber.StatusBadRequest, "Multiple tariffs cover this billing period")
		case err == sql.ErrNoRows:
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		log.Printf("invoice generation failed for room %s: %v", req.RoomID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate invoice")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    invoice,
		"message": "Invoice generated successfully",
	})
}

// GetInvoiceByIDAPI returns an invoice with its line items
func GetInvoiceByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	invoice, err := database.GetInvoiceByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoice,
	})
}

// GetInvoicesAPI lists invoices for a room or a whole hostel
func GetInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	roomID := c.Query("room_id")
	hostelID := c.Query("hostel_id")

	var invoices []*models.Invoice
	var err error
	switch {
	case roomID != "":
		invoices, err = database.GetInvoicesByRoom(db, roomID)
	case hostelID != "":
		invoices, err = database.GetInvoicesByHostel(db, hostelID)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "room_id or hostel_id query parameter is required")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoices,
	})
}

type collectMoneyRequest struct {
	InvoiceID      string          `json:"invoice_id"`
	Amount         decimal.Decimal `json:"amount"`
	TransferMethod string          `json:"transfer_method"`
}

// CollectMoneyAPI records a payment against an invoice
func CollectMoneyAPI(c *fiber.Ctx, db *sql.DB) error {
	var req collectMoneyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.InvoiceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invoice ID is required")
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}

	method := models.TransferMethod(req.TransferMethod)
	switch method {
	case models.TransferCash, models.TransferBank, models.TransferWallet:
	case "":
		method = models.TransferCash
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid transfer method")
	}

	invoice, err := database.CollectInvoicePayment(db, req.InvoiceID, req.Amount, method)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to collect payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoice,
		"message": "Payment collected successfully",
	})
}

type sendEmailRequest struct {
	InvoiceID string `json:"invoice_id"`
}

// SendInvoiceEmailAPI emails the invoice to the room's representative tenant.
// A delivery failure never changes the stored invoice.
func SendInvoiceEmailAPI(c *fiber.Ctx, db *sql.DB) error {
	var req sendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.InvoiceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invoice ID is required")
	}

	invoice, err := database.GetInvoiceByID(db, req.InvoiceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice")
	}

	room, err := database.GetRoomByID(db, invoice.RoomID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch room")
	}

	tenantID, err := billing.RepresentativeTenant(db, invoice.RoomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "Room has no active tenant to email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to find tenant")
	}

	tenant, err := database.GetTenantByID(db, tenantID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tenant")
	}
	if tenant.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tenant has no email address on file")
	}

	if err := services.SendInvoiceEmail(tenant.Email, room.Name, invoice); err != nil {
		log.Printf("failed to send invoice %s to %s: %v", invoice.ID, tenant.Email, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send invoice email")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice email sent successfully",
	})
}
