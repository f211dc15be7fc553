package wallet

import (
	"database/sql"
	"encoding/json"
	"log"

	"github.com/TungTV17/HostelFinder-sub000/app/config"
	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79/webhook"
)

// GetWalletAPI returns the caller's wallet balance
func GetWalletAPI(c *fiber.Ctx, db *sql.DB) error {
	userID := c.Locals("user_id").(string)

	wallet, err := database.GetWalletByUserID(db, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Wallet not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch wallet")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    wallet,
	})
}

// GetTransactionsAPI lists the caller's wallet transactions
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	userID := c.Locals("user_id").(string)

	transactions, err := database.GetWalletTransactions(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateDepositAPI opens a pending deposit and hands back the order code the
// payment gateway will echo in its webhook
func CreateDepositAPI(c *fiber.Ctx, db *sql.DB) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}

	userID := c.Locals("user_id").(string)
	orderCode := uuid.New().String()

	txn, err := database.CreatePendingDeposit(db, userID, orderCode, req.Amount)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create deposit")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    txn,
		"message": "Deposit created, awaiting payment confirmation",
	})
}

// PaymentWebhookAPI settles pending deposits from gateway events. The
// signature is verified against the webhook secret before anything is
// trusted, and settlement is idempotent so re-deliveries are safe to ack.
func PaymentWebhookAPI(c *fiber.Ctx, db *sql.DB) error {
	event, err := webhook.ConstructEvent(
		c.Body(),
		c.Get("Stripe-Signature"),
		config.AppConfig.Payment.WebhookSecret,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid webhook signature")
	}

	if event.Type != "payment_intent.succeeded" && event.Type != "checkout.session.completed" {
		return c.JSON(fiber.Map{"received": true})
	}

	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed event payload")
	}
	orderCode := object.Metadata["order_code"]
	if orderCode == "" {
		return c.JSON(fiber.Map{"received": true})
	}

	settled, err := database.SettleDepositByOrderCode(db, orderCode)
	if err != nil {
		log.Printf("failed to settle deposit %s: %v", orderCode, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to settle deposit")
	}
	if !settled {
		log.Printf("webhook for order %s had no pending deposit, ignoring", orderCode)
	}

	return c.JSON(fiber.Map{"received": true})
}
