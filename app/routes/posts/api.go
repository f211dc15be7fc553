package posts

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/TungTV17/HostelFinder-sub000/app/database"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/TungTV17/HostelFinder-sub000/app/services"
	"github.com/gofiber/fiber/v2"
)

// GetPostsAPI lists active listings, newest push first. Public.
func GetPostsAPI(c *fiber.Ctx, db *sql.DB) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	posts, err := database.GetPosts(db, database.PostFilters{
		Search: c.Query("search"),
		City:   c.Query("city"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    posts,
	})
}

// GetPostByIDAPI returns a single listing with its images. Public.
func GetPostByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	post, err := database.GetPostByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch post")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// CreatePostAPI publishes a listing, consuming one post from the caller's
// membership quota
func CreatePostAPI(c *fiber.Ctx, db *sql.DB) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	post.LandlordID = c.Locals("user_id").(string)

	if post.Title == "" || post.HostelID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title and hostel ID are required")
	}

	hostel, err := database.GetHostelByID(db, post.HostelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Hostel not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hostel")
	}
	if hostel.LandlordID != post.LandlordID {
		return fiber.NewError(fiber.StatusForbidden, "You do not own this hostel")
	}

	if err := database.CreatePost(db, &post); err != nil {
		if errors.Is(err, database.ErrQuotaExceeded) {
			return fiber.NewError(fiber.StatusBadRequest, "Post quota exceeded, upgrade your membership")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create post")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    post,
		"message": "Post created successfully",
	})
}

// UpdatePostAPI edits the caller's listing
func UpdatePostAPI(c *fiber.Ctx, db *sql.DB) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	post.ID = c.Params("id")
	post.LandlordID = c.Locals("user_id").(string)
	if post.Status == "" {
		post.Status = models.PostActive
	}

	if err := database.UpdatePost(db, &post); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update post")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
		"message": "Post updated successfully",
	})
}

// DeletePostAPI removes the caller's listing
func DeletePostAPI(c *fiber.Ctx, db *sql.DB) error {
	landlordID := c.Locals("user_id").(string)

	if err := database.DeletePost(db, c.Params("id"), landlordID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete post")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Post deleted successfully",
	})
}

// PushTopAPI bumps a listing to the top of the feed, consuming one push-top
// from the caller's membership quota
func PushTopAPI(c *fiber.Ctx, db *sql.DB) error {
	landlordID := c.Locals("user_id").(string)

	pushedAt, err := database.PushTopPost(db, c.Params("id"), landlordID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrQuotaExceeded):
			return fiber.NewError(fiber.StatusBadRequest, "Push-top quota exceeded, upgrade your membership")
		case err == sql.ErrNoRows:
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to push post")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"pushed_at": pushedAt},
		"message": "Post pushed to top successfully",
	})
}

// UploadPostImageAPI stores a listing photo and returns its public URL
func UploadPostImageAPI(c *fiber.Ctx, db *sql.DB) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Image file is required")
	}

	url, err := services.UploadFile(c.Context(), file)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"url": url},
	})
}
