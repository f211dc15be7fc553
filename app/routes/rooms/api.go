package rooms

import (
	"database/sql"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetRoomsAPI returns all rooms of a hostel
func GetRoomsAPI(c *fiber.Ctx, db *sql.DB) error {
	hostelID := c.Query("hostel_id")
	if hostelID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "hostel_id is required")
	}

	rooms, err := database.GetRoomsByHostel(db, hostelID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch rooms")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rooms,
	})
}

// GetRoomByIDAPI returns a specific room with its tenancies
func GetRoomByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	roomID := c.Params("id")

	room, err := database.GetRoomByID(db, roomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch room")
	}

	tenancies, err := database.GetTenanciesForRoom(db, roomID)
	if err == nil {
		room.Tenancies = tenancies
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    room,
	})
}

// CreateRoomAPI creates a new room under a hostel
func CreateRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if room.HostelID == "" || room.Name == "" || room.MonthlyRent.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if room.MaxOccupants < 1 {
		room.MaxOccupants = 1
	}

	hostel, err := database.GetHostelByID(db, room.HostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if hostel.LandlordID != c.Locals("user_id").(string) {
		return fiber.NewError(fiber.StatusForbidden, "Not your hostel")
	}

	if err := database.CreateRoom(db, &room); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create room")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    room,
		"message": "Room created successfully",
	})
}

// UpdateRoomAPI updates an existing room
func UpdateRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	roomID := c.Params("id")

	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	room.ID = roomID

	if err := database.UpdateRoom(db, &room); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update room")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room updated successfully",
	})
}

// DeleteRoomAPI soft deletes a room
func DeleteRoomAPI(c *fiber.Ctx, db *sql.DB) error {
	roomID := c.Params("id")

	if err := database.DeleteRoom(db, roomID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete room")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room deleted successfully",
	})
}
