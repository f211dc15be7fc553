package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TungTV17/HostelFinder-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostGrantsFreeTierOnFirstPost(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	post := &models.Post{
		LandlordID: "landlord-1",
		HostelID:   "hostel-1",
		Title:      "Sunny room near campus",
	}

	now := time.Now()
	mock.ExpectBegin()
	// no membership row yet: the decrement misses, the free tier is
	// granted, and the decrement succeeds on retry
	mock.ExpectExec("UPDATE user_memberships SET posts_left").
		WithArgs("landlord-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_memberships").
		WithArgs("landlord-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO user_memberships").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("membership-1", now, now))
	mock.ExpectExec("UPDATE user_memberships SET posts_left").
		WithArgs("landlord-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO posts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pushed_at", "created_at", "updated_at"}).
			AddRow("post-1", now, now, now))
	mock.ExpectCommit()

	err = CreatePost(db, post)
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePostQuotaExceeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	post := &models.Post{
		LandlordID: "landlord-1",
		HostelID:   "hostel-1",
		Title:      "Another room",
	}

	// an active membership exists but its counter is spent
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE user_memberships SET posts_left").
		WithArgs("landlord-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_memberships").
		WithArgs("landlord-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err = CreatePost(db, post)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPushTopFreshUserHasNoPushTops(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// the free tier is granted but carries zero push-tops, so the retry
	// still misses
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE user_memberships SET push_tops_left").
		WithArgs("landlord-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM user_memberships").
		WithArgs("landlord-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO user_memberships").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("membership-1", now, now))
	mock.ExpectExec("UPDATE user_memberships SET push_tops_left").
		WithArgs("landlord-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = PushTopPost(db, "post-1", "landlord-1")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
