package memberships

import (
	"database/sql"
	"errors"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetPlansAPI lists the membership tiers and their benefits
func GetPlansAPI(c *fiber.Ctx) error {
	plans := []fiber.Map{}
	for _, plan := range []models.MembershipPlan{models.PlanFree, models.PlanStandard, models.PlanPremium} {
		benefits := plan.Benefits()
		plans = append(plans, fiber.Map{
			"plan":     plan,
			"benefits": benefits,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    plans,
	})
}

// GetMyMembershipAPI returns the caller's active membership
func GetMyMembershipAPI(c *fiber.Ctx, db *sql.DB) error {
	userID := c.Locals("user_id").(string)

	membership, err := database.GetActiveMembership(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch membership")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    membership,
	})
}

type purchaseRequest struct {
	Plan string `json:"plan"`
}

// PurchaseMembershipAPI buys a plan with the caller's wallet balance
func PurchaseMembershipAPI(c *fiber.Ctx, db *sql.DB) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	plan := models.MembershipPlan(req.Plan)
	if !plan.Valid() || plan == models.PlanFree {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid membership plan")
	}

	userID := c.Locals("user_id").(string)
	membership, err := database.PurchaseMembership(db, userID, plan)
	if err != nil {
		if errors.Is(err, database.ErrInsufficientBalance) {
			return fiber.NewError(fiber.StatusBadRequest, "Insufficient wallet balance")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to purchase membership")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    membership,
		"message": "Membership purchased successfully",
	})
}
