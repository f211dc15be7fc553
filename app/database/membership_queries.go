package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TungTV17/HostelFinder-sub000/app/models"
)

// ErrQuotaExceeded is returned when a membership quota counter hits zero.
var ErrQuotaExceeded = errors.New("membership quota exceeded")

// GetActiveMembership returns the user's current membership, or the free
// plan's defaults if nothing was ever purchased.
func GetActiveMembership(db *sql.DB, userID string) (*models.UserMembership, error) {
	membership := &models.UserMembership{}
	var plan string
	query := `SELECT id, user_id, plan, posts_left, push_tops_left, start_date, expiry_date,
			  created_at, updated_at
			  FROM user_memberships
			  WHERE user_id = $1 AND (expiry_date IS NULL OR expiry_date > NOW())
			  ORDER BY created_at DESC
			  LIMIT 1`

	err := db.QueryRow(query, userID).Scan(
		&membership.ID, &membership.UserID, &plan, &membership.PostsLeft,
		&membership.PushTopsLeft, &membership.StartDate, &membership.ExpiryDate,
		&membership.CreatedAt, &membership.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return grantFreeMembership(db, userID)
	}
	if err != nil {
		return nil, err
	}
	membership.Plan = models.MembershipPlan(plan)
	return membership, nil
}

// grantFreeMembership lazily creates the free-tier row for a user.
func grantFreeMembership(q Querier, userID string) (*models.UserMembership, error) {
	benefits := models.PlanFree.Benefits()
	membership := &models.UserMembership{
		UserID:       userID,
		Plan:         models.PlanFree,
		PostsLeft:    benefits.MaxPosts,
		PushTopsLeft: benefits.MaxPushTop,
		StartDate:    time.Now(),
	}
	query := `INSERT INTO user_memberships (user_id, plan, posts_left, push_tops_left, start_date)
			  VALUES ($1, 'free', $2, $3, $4)
			  RETURNING id, created_at, updated_at`
	err := q.QueryRow(query, userID, benefits.MaxPosts, benefits.MaxPushTop, membership.StartDate).Scan(
		&membership.ID, &membership.CreatedAt, &membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// PurchaseMembership debits the user's wallet and opens the plan window in
// one transaction.
func PurchaseMembership(db *sql.DB, userID string, plan models.MembershipPlan) (*models.UserMembership, error) {
	if !plan.Valid() || plan == models.PlanFree {
		return nil, fmt.Errorf("unknown membership plan: %s", plan)
	}
	benefits := plan.Benefits()

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	note := fmt.Sprintf("Membership purchase: %s", plan)
	if err := DebitWallet(tx, userID, benefits.Price, models.TransactionMembership, note); err != nil {
		return nil, err
	}

	now := time.Now()
	expiry := now.AddDate(0, 0, benefits.Days)
	membership := &models.UserMembership{
		UserID:       userID,
		Plan:         plan,
		PostsLeft:    benefits.MaxPosts,
		PushTopsLeft: benefits.MaxPushTop,
		StartDate:    now,
		ExpiryDate:   &expiry,
	}
	query := `INSERT INTO user_memberships (user_id, plan, posts_left, push_tops_left, start_date, expiry_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, userID, string(plan), benefits.MaxPosts, benefits.MaxPushTop, now, expiry).Scan(
		&membership.ID, &membership.CreatedAt, &membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return membership, nil
}

// ConsumePostQuota decrements the posts counter on the active membership.
// Users without a membership row get the free tier granted on the spot.
// Runs in the caller's transaction alongside the post insert.
func ConsumePostQuota(tx *sql.Tx, userID string) error {
	return consumeQuota(tx, userID, "posts_left")
}

// ConsumePushTopQuota decrements the push-top counter.
func ConsumePushTopQuota(tx *sql.Tx, userID string) error {
	return consumeQuota(tx, userID, "push_tops_left")
}

func consumeQuota(tx *sql.Tx, userID, column string) error {
	decremented, err := decrementQuota(tx, userID, column)
	if err != nil {
		return err
	}
	if decremented {
		return nil
	}

	// a user who never touched memberships has no row yet; grant the free
	// tier inside this transaction and try once more
	var active int
	err = tx.QueryRow(`SELECT COUNT(*) FROM user_memberships
					   WHERE user_id = $1 AND (expiry_date IS NULL OR expiry_date > NOW())`,
		userID).Scan(&active)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrQuotaExceeded
	}

	if _, err := grantFreeMembership(tx, userID); err != nil {
		return err
	}

	decremented, err = decrementQuota(tx, userID, column)
	if err != nil {
		return err
	}
	if !decremented {
		return ErrQuotaExceeded
	}
	return nil
}

func decrementQuota(tx *sql.Tx, userID, column string) (bool, error) {
	query := fmt.Sprintf(`UPDATE user_memberships SET %s = %s - 1, updated_at = NOW()
						  WHERE id = (
							SELECT id FROM user_memberships
							WHERE user_id = $1 AND (expiry_date IS NULL OR expiry_date > NOW())
							ORDER BY created_at DESC LIMIT 1
						  ) AND %s > 0`, column, column, column)
	result, err := tx.Exec(query, userID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
