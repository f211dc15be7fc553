package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

// CreatePost inserts a listing and its images, consuming one post from the
// landlord's membership quota in the same transaction.
func CreatePost(db *sql.DB, post *models.Post) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := ConsumePostQuota(tx, post.LandlordID); err != nil {
		return err
	}

	query := `INSERT INTO posts (landlord_id, hostel_id, room_id, title, description, pushed_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, pushed_at, created_at, updated_at`
	err = tx.QueryRow(query,
		post.LandlordID, post.HostelID, post.RoomID, post.Title, post.Description,
	).Scan(&post.ID, &post.PushedAt, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return err
	}
	post.Status = models.PostActive

	for _, url := range post.ImageURLs {
		_, err = tx.Exec(`INSERT INTO post_images (post_id, url) VALUES ($1, $2)`, post.ID, url)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// PostFilters represents filtering options for public listing search
type PostFilters struct {
	Search string
	City   string
	Limit  int
	Offset int
}

func GetPosts(db *sql.DB, filters PostFilters) ([]*models.Post, error) {
	baseQuery := `SELECT p.id, p.landlord_id, p.hostel_id, p.room_id, p.title,
				  COALESCE(p.description, ''), p.status, p.pushed_at, p.created_at, p.updated_at
				  FROM posts p
				  JOIN hostels h ON h.id = p.hostel_id
				  WHERE p.deleted_at IS NULL AND p.status = 'active'`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(p.title) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		argIndex++
	}
	if filters.City != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(h.city) = $%d", argIndex))
		args = append(args, strings.ToLower(filters.City))
		argIndex++
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	// pushed_at drives listing order so push-top surfaces a post
	baseQuery += fmt.Sprintf(" ORDER BY p.pushed_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		var status string
		err := rows.Scan(
			&post.ID, &post.LandlordID, &post.HostelID, &post.RoomID, &post.Title,
			&post.Description, &status, &post.PushedAt, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			continue
		}
		post.Status = models.PostStatus(status)
		posts = append(posts, post)
	}
	return posts, nil
}

func GetPostByID(db *sql.DB, postID string) (*models.Post, error) {
	post := &models.Post{}
	var status string
	query := `SELECT id, landlord_id, hostel_id, room_id, title, COALESCE(description, ''),
			  status, pushed_at, created_at, updated_at
			  FROM posts WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, postID).Scan(
		&post.ID, &post.LandlordID, &post.HostelID, &post.RoomID, &post.Title,
		&post.Description, &status, &post.PushedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.Status = models.PostStatus(status)

	imageRows, err := db.Query(`SELECT url FROM post_images WHERE post_id = $1 ORDER BY created_at`, postID)
	if err != nil {
		return nil, err
	}
	defer imageRows.Close()
	for imageRows.Next() {
		var url string
		if err := imageRows.Scan(&url); err != nil {
			continue
		}
		post.ImageURLs = append(post.ImageURLs, url)
	}
	return post, nil
}

func UpdatePost(db *sql.DB, post *models.Post) error {
	query := `UPDATE posts SET title = $1, description = $2, status = $3, updated_at = NOW()
			  WHERE id = $4 AND landlord_id = $5 AND deleted_at IS NULL`
	result, err := db.Exec(query, post.Title, post.Description, string(post.Status), post.ID, post.LandlordID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeletePost(db *sql.DB, postID, landlordID string) error {
	query := `UPDATE posts SET deleted_at = NOW() WHERE id = $1 AND landlord_id = $2 AND deleted_at IS NULL`
	result, err := db.Exec(query, postID, landlordID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PushTopPost bumps the listing to the top of the feed, consuming one
// push-top from the membership quota.
func PushTopPost(db *sql.DB, postID, landlordID string) (time.Time, error) {
	tx, err := db.Begin()
	if err != nil {
		return time.Time{}, err
	}
	defer tx.Rollback()

	if err := ConsumePushTopQuota(tx, landlordID); err != nil {
		return time.Time{}, err
	}

	var pushedAt time.Time
	err = tx.QueryRow(`UPDATE posts SET pushed_at = NOW(), updated_at = NOW()
					   WHERE id = $1 AND landlord_id = $2 AND deleted_at IS NULL
					   RETURNING pushed_at`, postID, landlordID).Scan(&pushedAt)
	if err != nil {
		return time.Time{}, err
	}

	if err := tx.Commit(); err != nil {
		return time.Time{}, err
	}
	return pushedAt, nil
}
